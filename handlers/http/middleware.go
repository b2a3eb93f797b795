package httpHandler

import (
	"net/http"
	"time"

	"health-server/sessions"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxUserID    = "user_id"
	ctxSessionID = "session_id"
)

// RequestLogger writes one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// BodyLimit caps request bodies at limit bytes.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// RequireSession rejects requests without a live session and stores the
// session's user id in the gin context.
func RequireSession(manager *sessions.Manager, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		sess, err := manager.Verify(c.Request.Context(), token)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.Set(ctxUserID, sess.UserID)
		c.Set(ctxSessionID, sess.ID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func currentSession(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
