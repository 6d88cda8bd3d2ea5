package api

import (
	"net/http"
	"time"

	"stayvista/internal/auth"

	"github.com/gin-gonic/gin"
)

// CookieOptions is the single source of the session cookie attributes;
// login and logout must set and clear with the same values.
type CookieOptions struct {
	Name     string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

func NewCookieOptions(production bool, maxAge time.Duration) CookieOptions {
	sameSite := http.SameSiteStrictMode
	if production {
		sameSite = http.SameSiteNoneMode
	}
	return CookieOptions{
		Name:     "token",
		MaxAge:   maxAge,
		Secure:   production,
		SameSite: sameSite,
	}
}

func (o CookieOptions) set(c *gin.Context, token string) {
	c.SetSameSite(o.SameSite)
	c.SetCookie(o.Name, token, int(o.MaxAge.Seconds()), "/", "", o.Secure, true)
}

func (o CookieOptions) clear(c *gin.Context) {
	c.SetSameSite(o.SameSite)
	c.SetCookie(o.Name, "", -1, "/", "", o.Secure, true)
}

type AuthHandler struct {
	tokens *auth.TokenService
	cookie CookieOptions
}

func NewAuthHandler(tokens *auth.TokenService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{tokens: tokens, cookie: cookie}
}

func (h *AuthHandler) Register(router gin.IRouter) {
	router.POST("/jwt", h.login)
	router.GET("/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.cookie.set(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) logout(c *gin.Context) {
	h.cookie.clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
