package metrics

import (
	"fmt"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

const (
	topCategoryInsight = "Your highest spending category is %s with %s%.2f"
	busiestDayInsight  = "You tend to spend the most on %ss"
	lowSavingsInsight  = "Consider increasing your savings rate to at least 20% of income"
	goodSavingsInsight = "Great job! Your savings rate is %.1f%%"
)

const healthySavingsRate = 20

// Insights composes the spending observations shown on the dashboard.
// Nothing is reported until there is at least one expense.
func Insights(expenses []finance.Expense, income []finance.Income, currency string) []string {
	res := make([]string, 0, 3)
	if len(expenses) == 0 {
		return res
	}

	if cat, amount, ok := TopCategory(expenses); ok {
		res = append(res, fmt.Sprintf(topCategoryInsight, cat, currency, amount))
	}

	res = append(res, fmt.Sprintf(busiestDayInsight, busiestWeekday(expenses)))

	totalIncome := TotalIncome(income)
	if totalIncome > 0 {
		rate := SavingsRate(totalIncome, TotalExpenses(expenses))
		if rate < healthySavingsRate {
			res = append(res, lowSavingsInsight)
		} else {
			res = append(res, fmt.Sprintf(goodSavingsInsight, rate))
		}
	}
	return res
}

func busiestWeekday(expenses []finance.Expense) string {
	pattern := WeekdayPattern(expenses)
	best := pattern[0]
	for _, day := range pattern[1:] {
		if day.Amount > best.Amount {
			best = day
		}
	}
	return best.Day
}
