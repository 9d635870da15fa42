package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/metrics"
)

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if errs := validateRequest(req); errs != nil {
		respondValidation(c, errs)
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   sess.Token,
		"email":   sess.Email,
		"profile": sess.Record.Profile,
		"storage": h.storageName(),
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Logout(currentSession(c).Token)
	c.Status(http.StatusNoContent)
}

func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"storage":  h.storageName(),
		"degraded": !h.sessions.Available(),
	})
}

func (h *Handler) storageName() string {
	if h.sessions.Available() {
		return "mongo"
	}
	return "memory"
}

func (h *Handler) dashboard(c *gin.Context) {
	rec := currentSession(c).Record

	totalIncome := metrics.TotalIncome(rec.Income)
	totalExpenses := metrics.TotalExpenses(rec.Expenses)

	goals := make([]goalView, 0, len(rec.Goals))
	for _, g := range rec.Goals {
		goals = append(goals, goalView{SavingsGoal: g, ProgressPercent: metrics.GoalProgress(g)})
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly_income":    totalIncome,
		"monthly_expenses":  totalExpenses,
		"monthly_savings":   totalIncome - totalExpenses,
		"savings_rate":      metrics.SavingsRate(totalIncome, totalExpenses),
		"savings_goals":     goals,
		"insights":          metrics.Insights(rec.Expenses, rec.Income, rec.Profile.Currency),
		"days_until_salary": metrics.DaysUntilNextSalary(time.Now()),
	})
}

func (h *Handler) insights(c *gin.Context) {
	rec := currentSession(c).Record

	c.JSON(http.StatusOK, gin.H{
		"insights": metrics.Insights(rec.Expenses, rec.Income, rec.Profile.Currency),
	})
}

func (h *Handler) analytics(c *gin.Context) {
	rec := currentSession(c).Record

	period := c.DefaultQuery("period", metrics.PeriodAll)
	start, err := metrics.PeriodStart(period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "periods": metrics.Periods()})
		return
	}

	expenses := metrics.FilterExpensesSince(rec.Expenses, start)
	income := metrics.FilterIncomeSince(rec.Income, start)
	mostFrequent, _ := metrics.MostFrequentCategory(expenses)

	c.JSON(http.StatusOK, gin.H{
		"period":                 period,
		"daily_trend":            metrics.DailyTrend(expenses),
		"by_category":            metrics.GroupByCategory(expenses),
		"weekday_pattern":        metrics.WeekdayPattern(expenses),
		"monthly_flow":           metrics.MonthlyFlow(expenses, income),
		"average_daily_spend":    metrics.AverageDailySpend(expenses),
		"largest_expense":        metrics.LargestExpense(expenses),
		"most_frequent_category": mostFrequent,
		"savings_rate":           metrics.SavingsRate(metrics.TotalIncome(income), metrics.TotalExpenses(expenses)),
	})
}
