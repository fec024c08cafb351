// Package export serializes a filtered transaction view into the supported
// download formats: CSV, JSON, and PDF. It performs no aggregation of its
// own beyond what the report package provides.
package export

import (
	"time"

	"expenser/internal/models"
	"expenser/internal/report"
)

// Format identifies a supported export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ReportType selects how much detail the PDF report includes.
type ReportType string

const (
	ReportSummary  ReportType = "summary"
	ReportDetailed ReportType = "detailed"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string { return string(f) }

// Metadata describes how a report was produced.
type Metadata struct {
	GeneratedOn time.Time `json:"generated_on"`
	From        *string   `json:"from,omitempty"`
	To          *string   `json:"to,omitempty"`
	Categories  []string  `json:"categories"`
	Type        *string   `json:"type,omitempty"`
}

// Summary is the aggregate section of a report.
type Summary struct {
	Totals    report.Totals            `json:"totals"`
	Breakdown []report.CategorySummary `json:"category_breakdown"`
}

// Report is the fully assembled export payload: metadata, aggregates, and
// the filtered transaction list verbatim.
type Report struct {
	Metadata     Metadata             `json:"report_metadata"`
	Summary      Summary              `json:"summary"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewReport assembles a report from a filtered transaction list.
func NewReport(txs []models.Transaction, categories []models.Category, filter report.Filter, generatedOn time.Time) Report {
	meta := Metadata{
		GeneratedOn: generatedOn,
		Categories:  filter.Categories,
	}
	if meta.Categories == nil {
		meta.Categories = []string{}
	}
	if filter.From != nil {
		s := filter.From.UTC().Format("2006-01-02")
		meta.From = &s
	}
	if filter.To != nil {
		s := filter.To.UTC().Format("2006-01-02")
		meta.To = &s
	}
	if filter.Type != nil {
		s := string(*filter.Type)
		meta.Type = &s
	}

	if txs == nil {
		txs = []models.Transaction{}
	}

	return Report{
		Metadata: meta,
		Summary: Summary{
			Totals:    report.ComputeTotals(txs),
			Breakdown: report.CategoryBreakdown(txs, categories),
		},
		Transactions: txs,
	}
}
