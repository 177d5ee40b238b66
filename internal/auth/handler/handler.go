package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/auth/provider"
	"github.com/page-sage/page-sage/internal/auth/token"
	"github.com/page-sage/page-sage/internal/session"
	"github.com/page-sage/page-sage/internal/user"
)

const sessionTTL = 24 * time.Hour

// Handler owns the OAuth sign-in flow: per-provider login routes, the
// authorize/callback pair, and logout.
type Handler struct {
	providers *provider.Registry
	sessions  session.Store
	tokens    token.Store
	users     user.Store

	// used for token revocation; swapped out in tests
	httpClient *http.Client
}

func NewHandler(
	registry *provider.Registry,
	sessions session.Store,
	tokens token.Store,
	users user.Store,
) *Handler {
	return &Handler{
		providers:  registry,
		sessions:   sessions,
		tokens:     tokens,
		users:      users,
		httpClient: http.DefaultClient,
	}
}

// RegisterRoutes mounts the public sign-in routes. Logout requires an
// authenticated session, so the app wires it under the protected group.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	for _, name := range h.providers.Names() {
		p, _ := h.providers.Get(name)
		route := "/" + name + "-login"
		r.GET(route, h.providerLogin(p))
		r.POST(route, h.providerLogin(p))
	}

	r.GET("/oauth/authorize/:provider", h.Authorize)
	r.GET("/oauth/callback/:provider", h.Callback)
}

// currentSession resolves the request's session cookie to a live
// session, or nil.
func (h *Handler) currentSession(c *gin.Context) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := h.sessions.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		return nil
	}
	return sess
}
