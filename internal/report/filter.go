package report

import (
	"time"

	"expenser/internal/models"
)

// Filter selects the transactions an aggregate is computed over. The zero
// value matches everything.
type Filter struct {
	From       *time.Time
	To         *time.Time
	Categories []string
	Type       *models.TransactionType
}

// Matches reports whether a single transaction passes the filter.
func (f Filter) Matches(tx models.Transaction) bool {
	if f.From != nil && tx.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && tx.Date.After(*f.To) {
		return false
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, name := range f.Categories {
			if tx.Category == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the subset of transactions passing the filter. The result is
// always non-nil and preserves input order.
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
