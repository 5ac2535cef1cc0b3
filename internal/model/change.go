package model

// Op identifies one of the closed set of store mutations.
type Op string

const (
	OpAddTransaction    Op = "add_transaction"
	OpUpdateTransaction Op = "update_transaction"
	OpDeleteTransaction Op = "delete_transaction"
	OpSetBudget         Op = "set_budget"
	OpAddCategory       Op = "add_category"
	OpLoadSnapshot      Op = "load_snapshot"
)

// Change is one mutation in serializable form. Exactly the fields relevant
// to Op are set; the rest stay zero. The same record is applied in memory
// and appended to the persistence journal.
type Change struct {
	Op            Op           `json:"op"`
	Transaction   *Transaction `json:"transaction,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Budget        *Budget      `json:"budget,omitempty"`
	Category      *Category    `json:"category,omitempty"`
	Snapshot      *Snapshot    `json:"snapshot,omitempty"`
}

// Apply returns the snapshot resulting from one change. The receiver is
// never modified; every path builds fresh slices. Mutations referencing an
// unknown id or an unknown op are silent no-ops.
func (s Snapshot) Apply(c Change) Snapshot {
	switch c.Op {
	case OpAddTransaction:
		if c.Transaction == nil {
			return s
		}
		out := s.Clone()
		out.Transactions = append(out.Transactions, *c.Transaction)
		return out

	case OpUpdateTransaction:
		if c.Transaction == nil {
			return s
		}
		out := s.Clone()
		for i, tx := range out.Transactions {
			if tx.ID == c.Transaction.ID {
				out.Transactions[i] = *c.Transaction
				break
			}
		}
		return out

	case OpDeleteTransaction:
		out := s.Clone()
		kept := out.Transactions[:0]
		for _, tx := range out.Transactions {
			if tx.ID != c.TransactionID {
				kept = append(kept, tx)
			}
		}
		out.Transactions = kept
		return out

	case OpSetBudget:
		if c.Budget == nil {
			return s
		}
		out := s.Clone()
		for i, b := range out.Budgets {
			if b.Category == c.Budget.Category {
				out.Budgets[i] = *c.Budget
				return out
			}
		}
		out.Budgets = append(out.Budgets, *c.Budget)
		return out

	case OpAddCategory:
		if c.Category == nil {
			return s
		}
		out := s.Clone()
		out.Categories = append(out.Categories, *c.Category)
		return out

	case OpLoadSnapshot:
		if c.Snapshot == nil {
			return s
		}
		return c.Snapshot.Clone()
	}

	return s
}
