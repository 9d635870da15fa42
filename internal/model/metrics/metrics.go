package metrics

import (
	"sort"
	"time"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

// Totals sum every record they are given. Dashboards label them monthly
// but no date filtering happens here; callers narrow the slice first if
// they want a period.

func TotalExpenses(expenses []finance.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func TotalIncome(income []finance.Income) float64 {
	var total float64
	for _, i := range income {
		total += i.Amount
	}
	return total
}

// GroupByCategory sums expenses per category. Categories with no
// spending do not appear.
func GroupByCategory(expenses []finance.Expense) map[string]float64 {
	res := make(map[string]float64)
	for _, e := range expenses {
		res[e.Category] += e.Amount
	}
	return res
}

type BudgetState string

const (
	StateOnTrack    BudgetState = "on_track"
	StateWarning    BudgetState = "warning"
	StateOverBudget BudgetState = "over_budget"
)

type CategoryStatus struct {
	Category     string      `json:"category"`
	Budgeted     float64     `json:"budgeted"`
	Spent        float64     `json:"spent"`
	Remaining    float64     `json:"remaining"`
	UsagePercent float64     `json:"usage_percent"`
	State        BudgetState `json:"state"`
}

// BudgetStatus reports one row per budget category, in canonical
// category order. Spending in categories outside the budget is ignored.
func BudgetStatus(budget finance.Budget, expenses []finance.Expense) []CategoryStatus {
	spent := GroupByCategory(expenses)

	res := make([]CategoryStatus, 0, len(budget))
	for _, cat := range orderedKeys(budget) {
		row := CategoryStatus{
			Category:  cat,
			Budgeted:  budget[cat],
			Spent:     spent[cat],
			Remaining: budget[cat] - spent[cat],
		}
		if row.Budgeted > 0 {
			row.UsagePercent = row.Spent / row.Budgeted * 100
		}
		row.State = stateOf(row.UsagePercent)
		res = append(res, row)
	}
	return res
}

func stateOf(usage float64) BudgetState {
	switch {
	case usage > 100:
		return StateOverBudget
	case usage > 80:
		return StateWarning
	default:
		return StateOnTrack
	}
}

// SavingsRate is the saved share of income as a percentage. Zero income
// means a zero rate, never a division by zero. Overspending goes
// negative.
func SavingsRate(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// TopCategory names the category with the highest spending. Ties break
// toward canonical category order so the answer is stable.
func TopCategory(expenses []finance.Expense) (string, float64, bool) {
	if len(expenses) == 0 {
		return "", 0, false
	}

	totals := GroupByCategory(expenses)
	var best string
	var bestAmount float64
	for _, cat := range orderedKeys(totals) {
		if totals[cat] > bestAmount {
			best, bestAmount = cat, totals[cat]
		}
	}
	return best, bestAmount, true
}

type WeekdayAmount struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayPattern always returns seven entries, Monday through Sunday,
// zero-filled for days without spending.
func WeekdayPattern(expenses []finance.Expense) []WeekdayAmount {
	byDay := make(map[time.Weekday]float64, len(weekOrder))
	for _, e := range expenses {
		byDay[e.Date.Weekday()] += e.Amount
	}

	res := make([]WeekdayAmount, 0, len(weekOrder))
	for _, day := range weekOrder {
		res = append(res, WeekdayAmount{Day: day.String(), Amount: byDay[day]})
	}
	return res
}

type DayAmount struct {
	Date   finance.Date `json:"date"`
	Amount float64      `json:"amount"`
}

func DailyTrend(expenses []finance.Expense) []DayAmount {
	byDay := make(map[string]float64)
	for _, e := range expenses {
		byDay[e.Date.String()] += e.Amount
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	res := make([]DayAmount, 0, len(days))
	for _, day := range days {
		date, _ := finance.ParseDate(day)
		res = append(res, DayAmount{Date: date, Amount: byDay[day]})
	}
	return res
}

type MonthFlow struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

const monthLayout = "2006-01"

// MonthlyFlow compares income against expenses for every month that has
// expenses. Months with income but no spending are not reported.
func MonthlyFlow(expenses []finance.Expense, income []finance.Income) []MonthFlow {
	expByMonth := make(map[string]float64)
	for _, e := range expenses {
		expByMonth[e.Date.Format(monthLayout)] += e.Amount
	}
	incByMonth := make(map[string]float64)
	for _, i := range income {
		incByMonth[i.Date.Format(monthLayout)] += i.Amount
	}

	months := make([]string, 0, len(expByMonth))
	for month := range expByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	res := make([]MonthFlow, 0, len(months))
	for _, month := range months {
		res = append(res, MonthFlow{
			Month:    month,
			Income:   incByMonth[month],
			Expenses: expByMonth[month],
		})
	}
	return res
}

// AverageDailySpend divides total spending by the number of distinct
// days that have records.
func AverageDailySpend(expenses []finance.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	days := make(map[string]struct{})
	for _, e := range expenses {
		days[e.Date.String()] = struct{}{}
	}
	return TotalExpenses(expenses) / float64(len(days))
}

func LargestExpense(expenses []finance.Expense) float64 {
	var largest float64
	for _, e := range expenses {
		if e.Amount > largest {
			largest = e.Amount
		}
	}
	return largest
}

// MostFrequentCategory is the category with the most records, not the
// most money. Ties break toward canonical category order.
func MostFrequentCategory(expenses []finance.Expense) (string, bool) {
	if len(expenses) == 0 {
		return "", false
	}

	counts := make(map[string]float64)
	for _, e := range expenses {
		counts[e.Category]++
	}

	var best string
	var bestCount float64
	for _, cat := range orderedKeys(counts) {
		if counts[cat] > bestCount {
			best, bestCount = cat, counts[cat]
		}
	}
	return best, true
}

// GoalProgress is the saved share of the target, capped at 100.
func GoalProgress(goal finance.SavingsGoal) float64 {
	if goal.Target <= 0 {
		return 0
	}
	progress := goal.Current / goal.Target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

type Stats struct {
	ExpenseCount  int     `json:"expense_count"`
	IncomeCount   int     `json:"income_count"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalIncome   float64 `json:"total_income"`
	Net           float64 `json:"net"`
}

func AccountStats(expenses []finance.Expense, income []finance.Income) Stats {
	totalExp := TotalExpenses(expenses)
	totalInc := TotalIncome(income)
	return Stats{
		ExpenseCount:  len(expenses),
		IncomeCount:   len(income),
		TotalExpenses: totalExp,
		TotalIncome:   totalInc,
		Net:           totalInc - totalExp,
	}
}

// DaysUntilNextSalary counts days from today to the first of the next
// month. Salary is assumed to land on the first, so payday itself
// reports 0.
func DaysUntilNextSalary(today time.Time) int {
	if today.Day() == 1 {
		return 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return int(next.Sub(day).Hours() / 24)
}

// orderedKeys walks the map in canonical category order, then any
// remaining keys alphabetically, so iteration order never depends on map
// randomization.
func orderedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for _, cat := range finance.Categories {
		if _, ok := m[cat]; ok {
			keys = append(keys, cat)
		}
	}
	var extra []string
	for key := range m {
		if !finance.IsCategory(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}
