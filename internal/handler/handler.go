package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/session"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/store"
)

type Handler struct {
	sessions *session.Manager
	store    *store.UserStore
}

// New wires the JSON surface the dashboard UI consumes.
func New(sessions *session.Manager, userStore *store.UserStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), tracingMiddleware(), responseTimeMiddleware())

	router.GET("/health", handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &Handler{sessions: sessions, store: userStore}

	api := router.Group("/api/v1")
	api.POST("/login", h.login)
	api.GET("/status", h.status)

	authed := api.Group("", h.requireSession)
	authed.POST("/logout", h.logout)
	authed.GET("/dashboard", h.dashboard)
	authed.GET("/insights", h.insights)
	authed.GET("/analytics", h.analytics)

	authed.GET("/expenses", h.listExpenses)
	authed.POST("/expenses", h.addExpense)
	authed.DELETE("/expenses/:index", h.deleteExpense)

	authed.GET("/income", h.listIncome)
	authed.POST("/income", h.addIncome)
	authed.DELETE("/income/:index", h.deleteIncome)

	authed.GET("/budget", h.budget)
	authed.PUT("/budget", h.updateBudget)

	authed.GET("/goals", h.listGoals)
	authed.POST("/goals", h.addGoal)

	authed.GET("/profile", h.profile)
	authed.PATCH("/profile", h.updateProfile)

	return router
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "fintrack"})
}
