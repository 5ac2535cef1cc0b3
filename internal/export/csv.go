// Package export serializes store snapshots for external consumption:
// CSV transaction exports with period cutoffs, and whole-snapshot JSON
// and YAML documents. Import reads a JSON snapshot back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/report"
)

// csvHeader is the fixed column order of transaction exports.
var csvHeader = []string{"date", "type", "category", "description", "amount"}

// WriteCSV writes transactions dated within the last `days` days of now,
// newest first. days <= 0 exports everything.
func WriteCSV(w io.Writer, txs []model.Transaction, days int, now time.Time) error {
	if days > 0 {
		txs = report.FilterPeriod(txs, days, now)
	}
	txs = report.SortByDateDesc(txs)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.String(),
			string(tx.Kind),
			tx.Category,
			tx.Description,
			tx.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
