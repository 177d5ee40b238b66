package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	Flash(w, "Signed in with Google")

	var queued *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookieName {
			queued = c
		}
	}
	require.NotNil(t, queued)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(queued)

	w2 := httptest.NewRecorder()
	msg, ok := TakeFlash(w2, req)
	require.True(t, ok)
	assert.Equal(t, "Signed in with Google", msg)

	var cleared bool
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie must be cleared after read")
}

func TestTakeFlash_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	_, ok := TakeFlash(w, req)
	assert.False(t, ok)
}

func TestTakeFlash_GarbageValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%"})
	w := httptest.NewRecorder()

	_, ok := TakeFlash(w, req)
	assert.False(t, ok)
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 43) // 32 bytes base64url
}
