package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertLevel string

const (
	AlertNone    AlertLevel = "none"
	AlertWarning AlertLevel = "warning"
	AlertAlert   AlertLevel = "alert"
)

var warningThreshold = decimal.NewFromInt(90)

// AlertPolicy decides when budget usage raises a warning or an alert.
// Warnings only fire before GateDay. Exceeded budgets alert on any day unless
// GateExceeded is set, in which case they share the warning gate.
type AlertPolicy struct {
	GateDay      int
	GateExceeded bool
}

func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{GateDay: 25}
}

func (p AlertPolicy) Level(percentageUsed decimal.Decimal, day int) AlertLevel {
	beforeGate := day < p.GateDay
	switch {
	case percentageUsed.GreaterThanOrEqual(hundred):
		if !p.GateExceeded || beforeGate {
			return AlertAlert
		}
	case percentageUsed.GreaterThan(warningThreshold):
		if beforeGate {
			return AlertWarning
		}
	}
	return AlertNone
}

type Usage struct {
	Amount         decimal.Decimal
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed decimal.Decimal
	Alert          AlertLevel
}

// PercentageUsed is spent as a share of amount, capped at 100 and unrounded.
// A budget without a positive amount reports 0.
func PercentageUsed(spent, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Div(amount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// BudgetUsage measures the entries that fall in the given month and year
// against amount. The alert day is today's day of month when the period is the
// current one, and the period's last day for any other period. The level is
// decided on the exact percentage; the reported one is truncated to two places
// so usage under 100 never displays as 100.
func BudgetUsage(amount decimal.Decimal, entries []Entry, month time.Month, year int, today time.Time, policy AlertPolicy) Usage {
	spent := Sum(InPeriod(entries, month, year))
	pct := PercentageUsed(spent, amount)

	return Usage{
		Amount:         amount,
		Spent:          spent,
		Remaining:      amount.Sub(spent),
		PercentageUsed: pct.Truncate(2),
		Alert:          policy.Level(pct, alertDay(month, year, today)),
	}
}

// InPeriod keeps the entries dated in the given month of the given year (UTC).
func InPeriod(entries []Entry, month time.Month, year int) []Entry {
	var kept []Entry
	for _, e := range entries {
		d := e.Date.UTC()
		if d.Month() == month && d.Year() == year {
			kept = append(kept, e)
		}
	}
	return kept
}

func alertDay(month time.Month, year int, today time.Time) int {
	if today.Month() == month && today.Year() == year {
		return today.Day()
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
