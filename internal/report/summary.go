package report

import (
	"fmt"
	"math"
	"time"

	"expenser/internal/models"
)

// Summary bundles the headline statistics shown on the dashboard and
// analytics views.
type Summary struct {
	Totals           Totals   `json:"totals"`
	AvgDailySpending int64    `json:"avg_daily_spending"`
	SavingsRate      float64  `json:"savings_rate"`
	HealthScore      int      `json:"health_score"`
	TopCategory      string   `json:"top_category"`
	Recommendations  []string `json:"recommendations"`
}

// ComputeSummary derives the headline statistics for a transaction list.
// now anchors the average-daily-spending window; passing it explicitly keeps
// the function deterministic for tests.
func ComputeSummary(txs []models.Transaction, categories []models.Category, now time.Time) Summary {
	totals := ComputeTotals(txs)
	breakdown := CategoryBreakdown(txs, categories)

	s := Summary{
		Totals:           totals,
		AvgDailySpending: avgDailySpending(txs, totals.Expenses, now),
		Recommendations:  []string{},
	}
	if totals.Income > 0 {
		s.SavingsRate = float64(totals.Net) / float64(totals.Income) * 100
	}
	s.HealthScore = healthScore(totals)
	if len(breakdown) > 0 {
		s.TopCategory = breakdown[0].Name
	}
	s.Recommendations = recommendations(totals, breakdown, s.AvgDailySpending)
	return s
}

// avgDailySpending divides the expense total by the number of days between
// the earliest transaction and now, never fewer than one day.
func avgDailySpending(txs []models.Transaction, expenses int64, now time.Time) int64 {
	if len(txs) == 0 {
		return 0
	}
	earliest := txs[0].Date
	for _, tx := range txs[1:] {
		if tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	days := int64(math.Ceil(now.Sub(earliest).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return expenses / days
}

// healthScore maps the net-to-income ratio onto a 0..100 scale centered at 50.
func healthScore(totals Totals) int {
	income := totals.Income
	if income < 1 {
		income = 1
	}
	score := int(math.Round(float64(totals.Net)/float64(income)*100 + 50))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func recommendations(totals Totals, breakdown []CategorySummary, avgDaily int64) []string {
	recs := []string{}
	if totals.Net < 0 {
		recs = append(recs, "You're spending more than you earn. Consider reducing expenses in your top categories.")
	}
	if len(breakdown) > 0 && breakdown[0].Percentage > 40 {
		recs = append(recs, fmt.Sprintf("%.1f%% of your expenses are in %s. Consider setting a budget for this category.",
			breakdown[0].Percentage, breakdown[0].Name))
	}
	if avgDaily > 0 {
		recs = append(recs, fmt.Sprintf("Your average daily spending is $%s. Track this to meet your monthly budget goals.",
			FormatAmount(avgDaily)))
	}
	if totals.Net > 0 {
		recs = append(recs, "Great job! You're maintaining a positive balance. Consider setting up an emergency fund with your surplus.")
	}
	return recs
}

// FormatAmount renders cents as a dollar string with two decimals, e.g. 2550
// becomes "25.50" and -2550 becomes "-25.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
