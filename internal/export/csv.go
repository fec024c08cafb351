package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"expenser/internal/models"
	"expenser/internal/report"
)

var csvHeader = []string{"Date", "Description", "Category", "Type", "Amount", "Tags"}

// WriteCSV writes the transaction list as RFC 4180 CSV. Amounts are dollars
// with two decimals; tags are semicolon-joined in a single column.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, tx := range txs {
		record := []string{
			tx.Date.UTC().Format("2006-01-02"),
			tx.Description,
			tx.Category,
			string(tx.Type),
			report.FormatAmount(tx.Amount),
			strings.Join(tx.Tags, ";"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
