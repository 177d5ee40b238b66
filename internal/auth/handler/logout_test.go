package handler

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/page-sage/page-sage/internal/session"
)

func TestLogout_WithoutProviderToken(t *testing.T) {
	env := newTestEnv(googleStub())

	sessCookie := env.withSession(uuid.NewString())
	require.Equal(t, 1, env.sessions.len())

	w := env.do(http.MethodGet, "/logout", sessCookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, env.sessions.len(), "session must be cleared")

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be expired")
}

func TestLogout_RevokesGoogleTokenBestEffort(t *testing.T) {
	var revoked atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revoked.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("token"))
	}))
	defer srv.Close()

	stub := googleStub()
	stub.revokeURL = srv.URL
	env := newTestEnv(stub)
	env.handler.httpClient = srv.Client()

	sessCookie := env.withSession(uuid.NewString())
	tokCookie := env.withToken("flow-1", "google")

	w := env.do(http.MethodGet, "/logout", sessCookie, tokCookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, int32(1), revoked.Load(), "revoke endpoint must be called once")
	assert.Equal(t, 0, env.sessions.len())
}

func TestLogout_RevokeFailureDoesNotBlockLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer srv.Close()

	stub := googleStub()
	stub.revokeURL = srv.URL
	env := newTestEnv(stub)
	env.handler.httpClient = srv.Client()

	sessCookie := env.withSession(uuid.NewString())
	tokCookie := env.withToken("flow-1", "google")

	w := env.do(http.MethodGet, "/logout", sessCookie, tokCookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, env.sessions.len(), "logout always succeeds locally")
}
