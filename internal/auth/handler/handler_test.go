package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/page-sage/page-sage/internal/auth"
	"github.com/page-sage/page-sage/internal/auth/provider"
	"github.com/page-sage/page-sage/internal/session"
	"github.com/page-sage/page-sage/internal/user"
)

type stubAdapter struct {
	name    string
	label   string
	profile auth.Profile
	// returned by FetchProfile when set
	fetchErr  error
	records   bool
	revokeURL string
}

func (s *stubAdapter) Name() string  { return s.name }
func (s *stubAdapter) Label() string { return s.label }

func (s *stubAdapter) AuthCodeURL(state, codeChallenge string) string {
	return "https://provider.example/authorize?state=" + state
}

func (s *stubAdapter) Exchange(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "granted-" + code}, nil
}

func (s *stubAdapter) FetchProfile(ctx context.Context, tok *oauth2.Token) (auth.Profile, error) {
	if s.fetchErr != nil {
		return auth.Profile{}, s.fetchErr
	}
	return s.profile, nil
}

func (s *stubAdapter) RecordsLoginMethod() bool { return s.records }
func (s *stubAdapter) RevokeURL() string        { return s.revokeURL }

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
	creates  int
	deletes  int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]session.Session)}
}

func (f *fakeSessionStore) Create(ctx context.Context, s session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.SessionID] = s
	f.creates++
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	f.deletes++
	return nil
}

func (f *fakeSessionStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

type fakeTokenStore struct {
	mu      sync.Mutex
	records map[string]*oauth2.Token
	saves   int
	deletes int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{records: make(map[string]*oauth2.Token)}
}

func (f *fakeTokenStore) key(flowID, provider string) string {
	return flowID + ":" + provider
}

func (f *fakeTokenStore) Save(ctx context.Context, flowID, provider string, tok *oauth2.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[f.key(flowID, provider)] = tok
	f.saves++
	return nil
}

func (f *fakeTokenStore) Get(ctx context.Context, flowID, provider string) (*oauth2.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok, ok := f.records[f.key(flowID, provider)]
	if !ok {
		return nil, nil
	}
	return tok, nil
}

func (f *fakeTokenStore) Delete(ctx context.Context, flowID, provider string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, f.key(flowID, provider))
	f.deletes++
	return nil
}

type testEnv struct {
	router   *gin.Engine
	handler  *Handler
	sessions *fakeSessionStore
	tokens   *fakeTokenStore
	users    *user.InMemStore
}

func newTestEnv(adapters ...provider.Adapter) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		sessions: newFakeSessionStore(),
		tokens:   newFakeTokenStore(),
		users:    user.NewInMemStore(),
	}

	env.handler = NewHandler(
		provider.NewRegistry(adapters...),
		env.sessions,
		env.tokens,
		env.users,
	)

	env.router = gin.New()
	env.handler.RegisterRoutes(env.router)
	// logout is wired under the auth middleware in the app; tests
	// exercise the handler directly
	env.router.GET("/logout", env.handler.Logout)

	return env
}

// do performs a request carrying the given cookies.
func (e *testEnv) do(method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) withSession(userID string) *http.Cookie {
	id, _ := session.GenerateID()
	_ = e.sessions.Create(context.Background(), session.Session{
		SessionID: id,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	return &http.Cookie{Name: session.CookieName, Value: id}
}

func (e *testEnv) withToken(flowID, provider string) *http.Cookie {
	_ = e.tokens.Save(context.Background(), flowID, provider, &oauth2.Token{
		AccessToken: "access",
		Expiry:      time.Now().Add(time.Hour),
	})
	return &http.Cookie{Name: flowCookieName, Value: flowID}
}
