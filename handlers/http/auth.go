package httpHandler

import (
	"net/http"

	"health-server/sessions"
	"health-server/usecases"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	auth     *usecases.AuthUseCase
	sessions *sessions.Manager
	cookie   CookieConfig
	log      *zap.Logger
}

func NewAuthHandler(auth *usecases.AuthUseCase, manager *sessions.Manager, cookie CookieConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: manager, cookie: cookie, log: log}
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in usecases.RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please log in.",
		"data":    user,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in usecases.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	token, _, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.setCookie(c, token, int(h.sessions.TTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    user,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Revoke(c.Request.Context(), currentSession(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}

// GetSettings handles GET /api/v1/settings
func (h *AuthHandler) GetSettings(c *gin.Context) {
	theme, err := h.sessions.Theme(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	user, err := h.auth.User(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"theme": theme, "email": user.Email}})
}

type settingsRequest struct {
	Theme string `form:"theme" json:"theme"`
}

// UpdateSettings handles PUT /api/v1/settings
func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.sessions.SetTheme(c.Request.Context(), currentSession(c), req.Theme); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "data": gin.H{"theme": req.Theme}})
}

// ChangePassword handles POST /api/v1/settings/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var in usecases.ChangePasswordInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), currentUser(c), in); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
