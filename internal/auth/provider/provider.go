package provider

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/page-sage/page-sage/internal/auth"
)

// Expected failure modes of a profile fetch. The sign-in handler switches
// on these explicitly: expired grants restart the provider's authorization
// flow, anything else falls through without surfacing an error page.
var (
	// ErrTokenExpired means the provider no longer accepts the stored
	// grant (expired or revoked). Re-consent is required.
	ErrTokenExpired = errors.New("provider: token expired or revoked")

	// ErrFetchFailed means the profile resource returned a non-success
	// response or an unusable body.
	ErrFetchFailed = errors.New("provider: profile fetch failed")
)

// Adapter is the contract every external identity provider implements.
// Implementations return identity facts only and must not perform user
// creation, linking, or session management.
type Adapter interface {
	// Name returns the provider identifier (e.g. "google", "discord").
	Name() string

	// Label returns the provider's human name for user-facing messages.
	Label() string

	// AuthCodeURL returns the OAuth authorization URL. State and PKCE
	// parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// Exchange trades the authorization code for provider credentials.
	Exchange(ctx context.Context, code string, codeVerifier string) (*oauth2.Token, error)

	// FetchProfile retrieves the provider's current-user resource with
	// the given token and maps it to a canonical profile. Errors are
	// ErrTokenExpired, or wrap ErrFetchFailed.
	FetchProfile(ctx context.Context, tok *oauth2.Token) (auth.Profile, error)

	// RecordsLoginMethod reports whether a successful sign-in stamps
	// the provider name onto the user's login_method field.
	RecordsLoginMethod() bool

	// RevokeURL returns the token revocation endpoint, or "" when the
	// provider has none wired (revocation is google-only today).
	RevokeURL() string
}
