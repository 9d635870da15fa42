package metrics

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

const (
	PeriodAll   = "all"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

func init() {
	now.WeekStartDay = time.Monday
}

// Period starts are resolved at call time, against the current day.
var periodStarts = map[string]func() time.Time{
	"":          func() time.Time { return time.Time{} },
	PeriodAll:   func() time.Time { return time.Time{} },
	PeriodWeek:  now.BeginningOfWeek,
	PeriodMonth: now.BeginningOfMonth,
	PeriodYear:  now.BeginningOfYear,
}

// PeriodStart resolves a period name to its inclusive start. The zero
// time means no lower bound.
func PeriodStart(period string) (time.Time, error) {
	start, ok := periodStarts[period]
	if !ok {
		return time.Time{}, errors.Errorf("period %s is not supported", period)
	}
	return start(), nil
}

func Periods() []string {
	res := make([]string, 0, len(periodStarts))
	for name := range periodStarts {
		if name == "" {
			continue
		}
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// FilterExpensesSince keeps records dated on or after the start's
// calendar day. Records carry dates, not instants, so the boundary day
// is included whatever zone the start was computed in.
func FilterExpensesSince(expenses []finance.Expense, start time.Time) []finance.Expense {
	if start.IsZero() {
		return expenses
	}
	from := finance.DateOf(start)
	res := make([]finance.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(from.Time) {
			res = append(res, e)
		}
	}
	return res
}

func FilterIncomeSince(income []finance.Income, start time.Time) []finance.Income {
	if start.IsZero() {
		return income
	}
	from := finance.DateOf(start)
	res := make([]finance.Income, 0, len(income))
	for _, i := range income {
		if !i.Date.Before(from.Time) {
			res = append(res, i)
		}
	}
	return res
}
