package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"expenser/internal/report"
)

// WritePDF renders the report as a paginated PDF document: a summary table,
// a category table when the breakdown is non-empty, and a per-transaction
// table on a new page for detailed reports.
func WritePDF(w io.Writer, r Report, reportType ReportType) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("EXPENSER - Financial Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "EXPENSER - Financial Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s - %s", orAllTime(r.Metadata.From), orAllTime(r.Metadata.To)))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Generated on: "+r.Metadata.GeneratedOn.UTC().Format("2006-01-02"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, "Summary")
	pdf.Ln(10)

	summaryRows := [][2]string{
		{"Total Income", "$" + report.FormatAmount(r.Summary.Totals.Income)},
		{"Total Expenses", "$" + report.FormatAmount(r.Summary.Totals.Expenses)},
		{"Net Amount", "$" + report.FormatAmount(r.Summary.Totals.Net)},
		{"Total Transactions", fmt.Sprintf("%d", r.Summary.Totals.Count)},
	}
	tableHeader(pdf, []string{"Metric", "Value"}, []float64{90, 90})
	for _, row := range summaryRows {
		tableRow(pdf, row[:], []float64{90, 90})
	}
	pdf.Ln(8)

	if len(r.Summary.Breakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 9, "Category Breakdown")
		pdf.Ln(10)

		widths := []float64{70, 35, 40, 35}
		tableHeader(pdf, []string{"Category", "Transactions", "Amount", "Percentage"}, widths)
		for _, cat := range r.Summary.Breakdown {
			tableRow(pdf, []string{
				cat.Name,
				fmt.Sprintf("%d", cat.Count),
				"$" + report.FormatAmount(cat.Total),
				fmt.Sprintf("%.1f%%", cat.Percentage),
			}, widths)
		}
	}

	if reportType == ReportDetailed && len(r.Transactions) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 9, "Detailed Transactions")
		pdf.Ln(10)

		widths := []float64{25, 65, 40, 20, 30}
		tableHeader(pdf, []string{"Date", "Description", "Category", "Type", "Amount"}, widths)
		for _, tx := range r.Transactions {
			tableRow(pdf, []string{
				tx.Date.UTC().Format("2006-01-02"),
				tx.Description,
				tx.Category,
				string(tx.Type),
				"$" + report.FormatAmount(tx.Amount),
			}, widths)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func orAllTime(s *string) string {
	if s == nil {
		return "all time"
	}
	return *s
}

func tableHeader(pdf *fpdf.Fpdf, labels []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func tableRow(pdf *fpdf.Fpdf, cells []string, widths []float64) {
	pdf.SetFont("Helvetica", "", 10)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
