package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/page-sage/page-sage/internal/session"
)

type memStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]session.Session)}
}

func (m *memStore) Create(ctx context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = s
	return nil
}

func (m *memStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func protectedHandler(t *testing.T, store session.Store) (http.Handler, *string) {
	t.Helper()

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok, "user id must be in context")
		seenUserID = id
		w.WriteHeader(http.StatusOK)
	})

	return NewAuthMiddleware(store).RequireAuth(next), &seenUserID
}

func TestRequireAuth_NoCookieRedirectsToLogin(t *testing.T) {
	handler, _ := protectedHandler(t, newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth_LiveSessionPasses(t *testing.T) {
	store := newMemStore()
	_ = store.Create(context.Background(), session.Session{
		SessionID: "sid",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	handler, seen := protectedHandler(t, store)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", *seen)
}

func TestRequireAuth_ExpiredSessionIsDropped(t *testing.T) {
	store := newMemStore()
	_ = store.Create(context.Background(), session.Session{
		SessionID: "sid",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	handler, _ := protectedHandler(t, store)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	sess, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, sess, "expired session must be deleted")
}
