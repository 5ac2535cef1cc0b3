package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/types"
)

// addValues collects the add-transaction form fields.
type addValues struct {
	kind        string
	amount      string
	category    string
	date        string
	description string
}

// startAddForm opens the add-transaction overlay.
func (a App) startAddForm() (tea.Model, tea.Cmd) {
	a.addVals = addValues{
		kind: string(model.KindExpense),
		date: types.Today().String(),
	}

	catOpts := make([]huh.Option[string], 0, len(a.snap.Categories))
	for _, cat := range a.snap.Categories {
		catOpts = append(catOpts, huh.NewOption(cat.Icon+" "+cat.Name, cat.Name))
	}

	a.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(model.KindExpense)),
					huh.NewOption("Income", string(model.KindIncome)),
				).
				Value(&a.addVals.kind),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					d, err := decimal.NewFromString(s)
					if err != nil || !d.IsPositive() {
						return errors.New("enter a positive amount")
					}
					return nil
				}).
				Value(&a.addVals.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&a.addVals.category),
			huh.NewInput().
				Title("Date").
				Validate(func(s string) error {
					if _, err := types.ParseDate(s); err != nil {
						return fmt.Errorf("want YYYY-MM-DD")
					}
					return nil
				}).
				Value(&a.addVals.date),
			huh.NewInput().
				Title("Description").
				Value(&a.addVals.description),
		),
	)
	a.adding = true

	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.submitAdd()
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

// submitAdd records the transaction from the completed form. Values were
// validated field by field, so parse failures only happen if the form was
// abandoned mid-validation; those are dropped.
func (a *App) submitAdd() {
	amount, err := decimal.NewFromString(a.addVals.amount)
	if err != nil || !amount.IsPositive() {
		return
	}
	date, err := types.ParseDate(a.addVals.date)
	if err != nil {
		return
	}
	kind := model.Kind(a.addVals.kind)
	if !kind.Valid() {
		return
	}

	a.store.AddTransaction(model.TransactionData{
		Amount:      amount,
		Kind:        kind,
		Category:    a.addVals.category,
		Date:        date,
		Description: a.addVals.description,
	})
	a.recompute()
}
