package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"expenser/internal/models"
	"expenser/internal/report"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var exportCategories = []models.Category{
	{Name: "Food & Dining", Color: "#FF6B6B", Icon: "🍽️"},
	{Name: "Bills & Utilities", Color: "#FFEAA7", Icon: "⚡"},
	{Name: "Income", Color: "#58D68D", Icon: "💰"},
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Base:        models.Base{ID: "tx-1", CreatedAt: day(2025, 6, 10), UpdatedAt: day(2025, 6, 10)},
			UserID:      "user-1",
			Type:        models.TransactionTypeIncome,
			Amount:      300000,
			Description: "Monthly salary",
			Category:    "Income",
			Date:        day(2025, 6, 10),
		},
		{
			Base:        models.Base{ID: "tx-2", CreatedAt: day(2025, 6, 10), UpdatedAt: day(2025, 6, 10)},
			UserID:      "user-1",
			Type:        models.TransactionTypeExpense,
			Amount:      2550,
			Description: "Lunch at restaurant",
			Category:    "Food & Dining",
			Date:        day(2025, 6, 10),
			Tags:        models.Tags{"restaurant", "lunch"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Run("header_and_rows", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, sampleTransactions()); err != nil {
			t.Fatalf("WriteCSV: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("re-parsing csv: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(records))
		}
		want := []string{"Date", "Description", "Category", "Type", "Amount", "Tags"}
		if !reflect.DeepEqual(records[0], want) {
			t.Errorf("unexpected header: %v", records[0])
		}
		if records[1][4] != "3000.00" {
			t.Errorf("expected amount 3000.00, got %s", records[1][4])
		}
		if records[2][5] != "restaurant;lunch" {
			t.Errorf("expected semicolon-joined tags, got %q", records[2][5])
		}
	})

	t.Run("empty_list_writes_header_only", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, nil); err != nil {
			t.Fatalf("WriteCSV: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Errorf("expected header only, got %d lines", len(lines))
		}
	})

	t.Run("descriptions_with_commas_are_quoted", func(t *testing.T) {
		txs := []models.Transaction{{
			Type:        models.TransactionTypeExpense,
			Amount:      100,
			Description: `Dinner, drinks and "extras"`,
			Category:    "Food & Dining",
			Date:        day(2025, 6, 10),
		}}
		var buf bytes.Buffer
		if err := WriteCSV(&buf, txs); err != nil {
			t.Fatalf("WriteCSV: %v", err)
		}
		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("re-parsing csv: %v", err)
		}
		if records[1][1] != `Dinner, drinks and "extras"` {
			t.Errorf("description not round-tripped: %q", records[1][1])
		}
	})
}

func TestJSONRoundTrip(t *testing.T) {
	txs := sampleTransactions()
	from := day(2025, 6, 1)
	filter := report.Filter{From: &from}
	rep := NewReport(txs, exportCategories, filter, day(2025, 6, 11))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var parsed Report
	if err := ParseJSON(&buf, &parsed); err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if !reflect.DeepEqual(parsed.Transactions, txs) {
		t.Errorf("transactions did not round-trip:\nwant %+v\ngot  %+v", txs, parsed.Transactions)
	}
	if parsed.Summary.Totals != rep.Summary.Totals {
		t.Errorf("totals did not round-trip: %+v vs %+v", rep.Summary.Totals, parsed.Summary.Totals)
	}
	if parsed.Metadata.From == nil || *parsed.Metadata.From != "2025-06-01" {
		t.Errorf("metadata from did not round-trip: %v", parsed.Metadata.From)
	}
}

func TestNewReport(t *testing.T) {
	t.Run("empty_input_yields_empty_report", func(t *testing.T) {
		rep := NewReport(nil, exportCategories, report.Filter{}, day(2025, 6, 11))
		if rep.Transactions == nil || len(rep.Transactions) != 0 {
			t.Errorf("expected empty transactions, got %v", rep.Transactions)
		}
		if rep.Summary.Totals.Count != 0 {
			t.Errorf("expected zero totals, got %+v", rep.Summary.Totals)
		}
		if rep.Summary.Breakdown == nil {
			t.Error("expected non-nil breakdown")
		}
		if rep.Metadata.Categories == nil {
			t.Error("expected non-nil categories in metadata")
		}
	})

	t.Run("summary_matches_input", func(t *testing.T) {
		rep := NewReport(sampleTransactions(), exportCategories, report.Filter{}, day(2025, 6, 11))
		if rep.Summary.Totals.Income != 300000 || rep.Summary.Totals.Expenses != 2550 {
			t.Errorf("unexpected totals: %+v", rep.Summary.Totals)
		}
		if len(rep.Summary.Breakdown) != 1 || rep.Summary.Breakdown[0].Name != "Food & Dining" {
			t.Errorf("unexpected breakdown: %+v", rep.Summary.Breakdown)
		}
	})
}

func TestWritePDF(t *testing.T) {
	rep := NewReport(sampleTransactions(), exportCategories, report.Filter{}, day(2025, 6, 11))

	t.Run("summary_report", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WritePDF(&buf, rep, ReportSummary); err != nil {
			t.Fatalf("WritePDF: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Error("output is not a PDF document")
		}
	})

	t.Run("detailed_report_is_larger", func(t *testing.T) {
		var summary, detailed bytes.Buffer
		if err := WritePDF(&summary, rep, ReportSummary); err != nil {
			t.Fatalf("WritePDF summary: %v", err)
		}
		if err := WritePDF(&detailed, rep, ReportDetailed); err != nil {
			t.Fatalf("WritePDF detailed: %v", err)
		}
		if detailed.Len() <= summary.Len() {
			t.Errorf("expected detailed report to be larger: %d <= %d", detailed.Len(), summary.Len())
		}
	})
}
