package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/utils"
)

const (
	flowCookieName = "__oauth_flow"
	flowTTL        = 30 * 24 * time.Hour
)

// flowID returns the browser's OAuth flow id, or "". Token records are
// keyed by it so a grant survives between the callback and re-entry of
// the login route, and is still findable on logout for revocation.
func flowID(r *http.Request) string {
	cookie, err := r.Cookie(flowCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ensureFlowID returns the flow id, minting one if the browser has none.
func ensureFlowID(c *gin.Context) string {
	if id := flowID(c.Request); id != "" {
		return id
	}

	id := utils.RandomString(32)

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flowCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(flowTTL.Seconds()),
	})

	return id
}
