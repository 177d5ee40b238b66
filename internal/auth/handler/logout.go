package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/logger"
	"github.com/page-sage/page-sage/internal/session"
)

// Logout ends the local session and redirects to the landing page. If a
// Google grant is on file it is revoked first, best-effort: revocation
// never blocks logout.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if flowID := flowID(c.Request); flowID != "" {
		h.revokeGoogleToken(ctx, flowID)
	}

	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Delete(ctx, cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	session.Flash(c.Writer, "You have logged out")

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) revokeGoogleToken(ctx context.Context, flowID string) {
	p, err := h.providers.Get("google")
	if err != nil || p.RevokeURL() == "" {
		return
	}

	tok, err := h.tokens.Get(ctx, flowID, p.Name())
	if err != nil || tok == nil || tok.AccessToken == "" {
		return
	}

	revoke := p.RevokeURL() + "?token=" + url.QueryEscape(tok.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revoke, nil)
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		logger.Warn("google token revocation failed", map[string]any{
			"error": err.Error(),
		})
		return
	}
	resp.Body.Close()
}
