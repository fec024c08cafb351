// Package report computes derived aggregate views over a transaction list.
// Every function here is pure: output depends only on the arguments, empty
// input yields zero values and empty slices, and denominators of zero yield
// zero rather than NaN.
//
// Amounts are int64 cents throughout, matching the transaction model.
package report

import (
	"sort"
	"time"

	"expenser/internal/models"
)

// Totals holds the income/expense sums for a transaction list.
type Totals struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Net      int64 `json:"net"`
	Count    int   `json:"count"`
}

// ComputeTotals sums incomes and expenses in a single pass.
func ComputeTotals(txs []models.Transaction) Totals {
	t := Totals{Count: len(txs)}
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income += tx.Amount
		case models.TransactionTypeExpense:
			t.Expenses += tx.Amount
		}
	}
	t.Net = t.Income - t.Expenses
	return t
}

// TrendInterval selects the grouping granularity of a trend.
type TrendInterval string

const (
	IntervalMonth TrendInterval = "month"
	IntervalDay   TrendInterval = "day"
)

// TrendPoint is one period in a periodic trend, ordered by period start.
type TrendPoint struct {
	Period   string    `json:"period"`
	Start    time.Time `json:"start"`
	Income   int64     `json:"income"`
	Expenses int64     `json:"expenses"`
	Net      int64     `json:"net"`
}

// Trend groups transactions by calendar month or day and accumulates
// income/expense sums per period, ascending by period start.
func Trend(txs []models.Transaction, interval TrendInterval) []TrendPoint {
	byStart := make(map[time.Time]*TrendPoint)
	for _, tx := range txs {
		start, label := periodOf(tx.Date, interval)
		p, ok := byStart[start]
		if !ok {
			p = &TrendPoint{Period: label, Start: start}
			byStart[start] = p
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			p.Income += tx.Amount
		case models.TransactionTypeExpense:
			p.Expenses += tx.Amount
		}
	}

	points := make([]TrendPoint, 0, len(byStart))
	for _, p := range byStart {
		p.Net = p.Income - p.Expenses
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Start.Before(points[j].Start) })
	return points
}

func periodOf(date time.Time, interval TrendInterval) (time.Time, string) {
	d := date.UTC()
	if interval == IntervalDay {
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		return start, start.Format("2006-01-02")
	}
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.Format("Jan 2006")
}

// CategorySummary is one row of a category breakdown, descending by total.
type CategorySummary struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Total      int64   `json:"total"`
	Count      int     `json:"count"`
	Average    int64   `json:"average"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown computes, for each known category, the expense total,
// count, average, and share of the grand expense total. Categories with a
// zero total are excluded; expenses whose category matches no known name are
// not reported (the row sum is therefore at most the expense total, with
// equality when every name matches). An empty denominator yields 0 percent.
func CategoryBreakdown(txs []models.Transaction, categories []models.Category) []CategorySummary {
	grandTotal := ComputeTotals(txs).Expenses

	rows := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		row := CategorySummary{Name: cat.Name, Color: cat.Color, Icon: cat.Icon}
		for _, tx := range txs {
			if tx.Type != models.TransactionTypeExpense || tx.Category != cat.Name {
				continue
			}
			row.Total += tx.Amount
			row.Count++
		}
		if row.Total == 0 {
			continue
		}
		row.Average = row.Total / int64(row.Count)
		if grandTotal > 0 {
			row.Percentage = float64(row.Total) / float64(grandTotal) * 100
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// WeekdayTotal is the expense sum for one day of the week.
type WeekdayTotal struct {
	Day    string `json:"day"`
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}

// WeekdayPattern sums expense amounts per weekday, Sunday through Saturday.
// All seven rows are always present.
func WeekdayPattern(txs []models.Transaction) []WeekdayTotal {
	rows := make([]WeekdayTotal, 7)
	for i := range rows {
		rows[i].Day = time.Weekday(i).String()[:3]
	}
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		wd := tx.Date.UTC().Weekday()
		rows[wd].Amount += tx.Amount
		rows[wd].Count++
	}
	return rows
}

// SpendingDay is one calendar day's expense total.
type SpendingDay struct {
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// TopSpendingDays groups expenses by exact date, sums per date, and returns
// the n highest totals in descending order.
func TopSpendingDays(txs []models.Transaction, n int) []SpendingDay {
	byDate := make(map[string]*SpendingDay)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		key := tx.Date.UTC().Format("2006-01-02")
		d, ok := byDate[key]
		if !ok {
			d = &SpendingDay{Date: key, Description: tx.Description}
			byDate[key] = d
		}
		d.Amount += tx.Amount
		d.Count++
	}

	days := make([]SpendingDay, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Amount != days[j].Amount {
			return days[i].Amount > days[j].Amount
		}
		return days[i].Date < days[j].Date
	})
	if len(days) > n {
		days = days[:n]
	}
	return days
}
