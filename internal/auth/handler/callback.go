package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/logger"
)

// Authorize starts a provider's authorization-code flow: set the state,
// PKCE and flow cookies, then hand the browser to the provider.
func (h *Handler) Authorize(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.String(http.StatusBadRequest, "unknown oauth provider")
		return
	}

	ensureFlowID(c)
	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// Callback completes the code exchange and stores the token record,
// then re-enters the provider's login route, which now finds a grant.
func (h *Handler) Callback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.String(http.StatusBadRequest, "unknown oauth provider")
		return
	}

	if !validateState(c) {
		c.String(http.StatusUnauthorized, "invalid state")
		return
	}

	// Providers report consent denials and the like via the error
	// query param. Send the user back to the sign-in chooser.
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", map[string]any{
			"provider": providerName,
		})
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.String(http.StatusUnauthorized, "missing pkce verifier")
		return
	}

	tok, err := p.Exchange(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	flowID := ensureFlowID(c)
	if err := h.tokens.Save(c.Request.Context(), flowID, providerName, tok); err != nil {
		h.fail(c, "token record save failed", providerName, err)
		return
	}

	c.Redirect(http.StatusFound, "/"+providerName+"-login")
}
