package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/page-sage/page-sage/internal/middleware"
	"github.com/page-sage/page-sage/internal/session"
	"github.com/page-sage/page-sage/internal/user"
)

// Handler renders the landing, user and book-club pages. Every route is
// a thin wrapper: run the search-form gate, render a template.
type Handler struct {
	searchKey string
	sessions  session.Store
	users     user.Store
}

func NewHandler(searchKey string, sessions session.Store, users user.Store) *Handler {
	return &Handler{
		searchKey: searchKey,
		sessions:  sessions,
		users:     users,
	}
}

// RegisterPublicRoutes mounts the landing and sign-in chooser pages.
func (h *Handler) RegisterPublicRoutes(r *gin.Engine) {
	for _, route := range []string{"/", "/index", "/welcome"} {
		r.GET(route, h.page("landing/welcome.html"))
	}
	r.GET("/about", h.page("landing/about.html"))
	for _, route := range []string{"/terms", "/tos", "/terms-of-service"} {
		r.GET(route, h.page("landing/terms.html"))
	}
	r.GET("/privacy", h.page("landing/privacy.html"))

	r.GET("/login", h.login)
	r.GET("/choose-login", h.login)
	r.GET("/signup", h.page("authn/signup.html"))
}

// RegisterProtectedRoutes mounts the session-gated pages.
func (h *Handler) RegisterProtectedRoutes(g *gin.RouterGroup) {
	pages := []struct {
		routes   []string
		template string
	}{
		{[]string{"/user/book"}, "user/book.html"},
		{[]string{"/my-shelf"}, "user/my-shelf.html"},
		{[]string{"/user/settings"}, "user/settings.html"},
		{[]string{"/club", "/bookclub"}, "bookclub/club.html"},
		{[]string{"/bookclub/forums"}, "bookclub/forums.html"},
		{[]string{"/bookclub/forum"}, "bookclub/forum.html"},
		{[]string{"/bookclub/settings"}, "bookclub/settings.html"},
		{[]string{"/bookclub/shelf", "/bookclub/bookshelf"}, "bookclub/shelf.html"},
		{[]string{"/bookclub/suggestions"}, "bookclub/suggestions.html"},
		{[]string{"/bookclub/book"}, "bookclub/book.html"},
	}

	for _, p := range pages {
		for _, route := range p.routes {
			g.GET(route, h.gatedPage(p.template))
			g.POST(route, h.gatedPage(p.template))
		}
	}

	for _, route := range []string{"/profile", "/user"} {
		g.GET(route, h.profile)
		g.POST(route, h.profile)
	}

	g.GET("/user/search", h.search)
	g.POST("/user/search", h.search)
	g.GET("/bookclub/search", h.clubSearch)
	g.POST("/bookclub/search", h.clubSearch)
}

// login renders the sign-in chooser, or goes straight to the profile
// when the browser already has a live session.
func (h *Handler) login(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	h.render(c, "authn/choose-login.html", nil)
}

func (h *Handler) profile(c *gin.Context) {
	if h.searchForm(c) {
		return
	}

	data := gin.H{}
	if u := h.currentUser(c); u != nil {
		data["User"] = u
	}
	h.render(c, "user/profile.html", data)
}

func (h *Handler) search(c *gin.Context) {
	if q, ok := submittedQuery(c); ok {
		session.Flash(c.Writer, "Search requested for "+q)
		c.Redirect(http.StatusFound, "/user/search")
		return
	}
	h.render(c, "user/search.html", gin.H{"SearchKey": h.searchKey})
}

func (h *Handler) clubSearch(c *gin.Context) {
	if h.searchForm(c) {
		return
	}
	h.render(c, "bookclub/search.html", gin.H{"SearchKey": h.searchKey})
}

// page renders an ungated template.
func (h *Handler) page(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, template, nil)
	}
}

// gatedPage runs the shared search-form gate before rendering.
func (h *Handler) gatedPage(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.searchForm(c) {
			return
		}
		h.render(c, template, nil)
	}
}

func (h *Handler) render(c *gin.Context, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if msg, ok := session.TakeFlash(c.Writer, c.Request); ok {
		data["Flash"] = msg
	}
	c.HTML(http.StatusOK, template, data)
}

func (h *Handler) authenticated(c *gin.Context) bool {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	sess, err := h.sessions.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		return false
	}
	return time.Now().Before(sess.ExpiresAt)
}

func (h *Handler) currentUser(c *gin.Context) *user.User {
	idStr, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		return nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	u, err := h.users.ByID(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return u
}
