package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/session"
)

const sessionHeader = "X-Session-Token"

const sessionKey = "session"

func (h *Handler) requireSession(c *gin.Context) {
	sess, ok := h.sessions.Get(c.GetHeader(sessionHeader))
	if !ok {
		respondError(c, http.StatusUnauthorized, noSessionMessage)
		c.Abort()
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func tracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.Finish()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}
	}
}
