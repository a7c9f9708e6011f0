// Package aggregate turns a list of expenses into the summaries shown on the dashboard.
package aggregate

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// Entry is the slice of an expense the aggregations need.
type Entry struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
}

type DailyTotal struct {
	Date  string
	Total decimal.Decimal
}

// DailyTotals sums entries per UTC calendar day, smallest total first.
// Days with equal totals keep date order.
func DailyTotals(entries []Entry) []DailyTotal {
	byDay := make(map[string]decimal.Decimal)
	for _, e := range entries {
		day := e.Date.UTC().Format(dateLayout)
		byDay[day] = byDay[day].Add(e.Amount)
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for day, total := range byDay {
		totals = append(totals, DailyTotal{Date: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c < 0
		}
		return totals[i].Date < totals[j].Date
	})
	return totals
}

type CategoryTotal struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// CategoryBreakdown sums entries per category, largest total first, with each
// category's share of the grand total rounded to two places.
func CategoryBreakdown(entries []Entry) []CategoryTotal {
	byCategory := make(map[uuid.UUID]decimal.Decimal)
	grand := decimal.Zero
	for _, e := range entries {
		byCategory[e.CategoryID] = byCategory[e.CategoryID].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for id, total := range byCategory {
		totals = append(totals, CategoryTotal{
			CategoryID: id,
			Total:      total,
			Percentage: percentOf(total, grand),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].CategoryID.String() < totals[j].CategoryID.String()
	})
	return totals
}

// Sum adds every entry amount.
func Sum(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}
