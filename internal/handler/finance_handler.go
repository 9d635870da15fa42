package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/metrics"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/store"
)

type goalView struct {
	finance.SavingsGoal
	ProgressPercent float64 `json:"progress_percent"`
}

func (h *Handler) listExpenses(c *gin.Context) {
	rec := currentSession(c).Record

	c.JSON(http.StatusOK, gin.H{
		"expenses": rec.Expenses,
		"total":    metrics.TotalExpenses(rec.Expenses),
	})
}

func (h *Handler) addExpense(c *gin.Context) {
	sess := currentSession(c)

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	if errs := validateRequest(req); errs != nil {
		respondValidation(c, errs)
		return
	}
	date, err := finance.ParseDate(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, invalidDateMessage)
		return
	}

	exp := finance.Expense{
		Date:        date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := h.store.AddExpense(c.Request.Context(), sess.Record, exp); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *Handler) listIncome(c *gin.Context) {
	rec := currentSession(c).Record

	c.JSON(http.StatusOK, gin.H{
		"income": rec.Income,
		"total":  metrics.TotalIncome(rec.Income),
	})
}

func (h *Handler) addIncome(c *gin.Context) {
	sess := currentSession(c)

	var req incomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	if errs := validateRequest(req); errs != nil {
		respondValidation(c, errs)
		return
	}
	date, err := finance.ParseDate(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, invalidDateMessage)
		return
	}

	inc := finance.Income{
		Date:      date,
		Source:    req.Source,
		Amount:    req.Amount,
		Frequency: req.Frequency,
	}
	if err := h.store.AddIncome(c.Request.Context(), sess.Record, inc); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, inc)
}

func (h *Handler) deleteExpense(c *gin.Context) {
	h.deleteAt(c, store.KindExpense)
}

func (h *Handler) deleteIncome(c *gin.Context) {
	h.deleteAt(c, store.KindIncome)
}

func (h *Handler) deleteAt(c *gin.Context, kind store.Kind) {
	sess := currentSession(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, http.StatusBadRequest, invalidIndexMessage)
		return
	}

	err = h.store.DeleteAt(c.Request.Context(), sess.Record, kind, index)
	if errors.Is(err, store.ErrBadIndex) {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) budget(c *gin.Context) {
	rec := currentSession(c).Record

	rows := metrics.BudgetStatus(rec.Budget, rec.Expenses)
	var totalBudget, totalSpent float64
	for _, row := range rows {
		totalBudget += row.Budgeted
		totalSpent += row.Spent
	}

	c.JSON(http.StatusOK, gin.H{
		"total_budget": totalBudget,
		"total_spent":  totalSpent,
		"remaining":    totalBudget - totalSpent,
		"categories":   rows,
	})
}

func (h *Handler) updateBudget(c *gin.Context) {
	sess := currentSession(c)

	var budget finance.Budget
	if err := c.ShouldBindJSON(&budget); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	if err := h.store.UpdateBudget(c.Request.Context(), sess.Record, budget); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": sess.Record.Budget})
}

func (h *Handler) listGoals(c *gin.Context) {
	rec := currentSession(c).Record

	goals := make([]goalView, 0, len(rec.Goals))
	for _, g := range rec.Goals {
		goals = append(goals, goalView{SavingsGoal: g, ProgressPercent: metrics.GoalProgress(g)})
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *Handler) addGoal(c *gin.Context) {
	sess := currentSession(c)

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	if errs := validateRequest(req); errs != nil {
		respondValidation(c, errs)
		return
	}

	goal := finance.SavingsGoal{
		Name:     req.Name,
		Target:   req.Target,
		Current:  req.Current,
		Deadline: req.Deadline,
	}
	if err := h.store.AddGoal(c.Request.Context(), sess.Record, goal); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, goalView{SavingsGoal: goal, ProgressPercent: metrics.GoalProgress(goal)})
}

func (h *Handler) profile(c *gin.Context) {
	rec := currentSession(c).Record

	c.JSON(http.StatusOK, gin.H{
		"profile": rec.Profile,
		"stats":   metrics.AccountStats(rec.Expenses, rec.Income),
	})
}

func (h *Handler) updateProfile(c *gin.Context) {
	sess := currentSession(c)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	patch := store.ProfilePatch{
		Name:     req.Name,
		Currency: req.Currency,
		Language: req.Language,
	}
	if err := h.store.UpdateProfile(c.Request.Context(), sess.Record, patch); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": sess.Record.Profile})
}
