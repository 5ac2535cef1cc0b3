package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pocketfin/pocket/internal/model"
)

// Format identifies a snapshot export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want csv, json, or yaml)", s)
}

// WriteJSON writes the snapshot as the budgetData JSON document.
func WriteJSON(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// WriteYAML writes the snapshot as a YAML document with the same shape
// as the JSON layout.
func WriteYAML(w io.Writer, snap model.Snapshot) error {
	doc := yamlSnapshot{
		Transactions: make([]yamlTransaction, len(snap.Transactions)),
		Budgets:      make([]yamlBudget, len(snap.Budgets)),
		Categories:   snap.Categories,
	}
	for i, tx := range snap.Transactions {
		amount, _ := tx.Amount.Float64()
		doc.Transactions[i] = yamlTransaction{
			ID:          tx.ID,
			Amount:      amount,
			Type:        string(tx.Kind),
			Category:    tx.Category,
			Date:        tx.Date.String(),
			Description: tx.Description,
		}
	}
	for i, b := range snap.Budgets {
		limit, _ := b.Limit.Float64()
		spent, _ := b.Spent.Float64()
		doc.Budgets[i] = yamlBudget{Category: b.Category, Limit: limit, Spent: spent}
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ReadJSON parses a budgetData JSON document.
func ReadJSON(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

type yamlSnapshot struct {
	Transactions []yamlTransaction `yaml:"transactions"`
	Budgets      []yamlBudget      `yaml:"budgets"`
	Categories   []model.Category  `yaml:"categories"`
}

type yamlTransaction struct {
	ID          string  `yaml:"id"`
	Amount      float64 `yaml:"amount"`
	Type        string  `yaml:"type"`
	Category    string  `yaml:"category"`
	Date        string  `yaml:"date"`
	Description string  `yaml:"description"`
}

type yamlBudget struct {
	Category string  `yaml:"category"`
	Limit    float64 `yaml:"limit"`
	Spent    float64 `yaml:"spent"`
}
