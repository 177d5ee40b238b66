package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// searchForm is the shared gate every page with a search box runs: a
// submitted, non-empty search form redirects to the search page. No
// other side effect.
func (h *Handler) searchForm(c *gin.Context) bool {
	if _, ok := submittedQuery(c); !ok {
		return false
	}
	c.Redirect(http.StatusFound, "/user/search")
	return true
}

// submittedQuery returns the search term when the request is a form
// submission that passes validation (non-blank term).
func submittedQuery(c *gin.Context) (string, bool) {
	if c.Request.Method != http.MethodPost {
		return "", false
	}

	q := strings.TrimSpace(c.PostForm("search_item"))
	if q == "" {
		return "", false
	}
	return q, true
}
