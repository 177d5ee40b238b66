package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/page-sage/page-sage/internal/auth"
)

// FieldMap names the provider-specific JSON fields that carry the
// canonical (email, first name) pair.
type FieldMap struct {
	Email string
	Name  string
}

// Options configures an OAuth2Adapter for one provider.
type Options struct {
	Name               string
	Label              string
	Config             *oauth2.Config
	ProfileURL         string
	Fields             FieldMap
	RecordsLoginMethod bool
	RevokeURL          string
}

// OAuth2Adapter is the shared adapter implementation. The three
// providers differ only in endpoints and profile field names, so each
// provider package just fills in Options.
type OAuth2Adapter struct {
	opts Options
}

func NewOAuth2Adapter(opts Options) *OAuth2Adapter {
	return &OAuth2Adapter{opts: opts}
}

func (a *OAuth2Adapter) Name() string  { return a.opts.Name }
func (a *OAuth2Adapter) Label() string { return a.opts.Label }

func (a *OAuth2Adapter) RecordsLoginMethod() bool { return a.opts.RecordsLoginMethod }
func (a *OAuth2Adapter) RevokeURL() string        { return a.opts.RevokeURL }

// AuthCodeURL builds the OAuth authorization URL with PKCE parameters.
func (a *OAuth2Adapter) AuthCodeURL(state string, codeChallenge string) string {
	return a.opts.Config.AuthCodeURL(
		state,
		oauth2.AccessTypeOnline,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// Exchange trades the authorization code for a token.
func (a *OAuth2Adapter) Exchange(ctx context.Context, code string, codeVerifier string) (*oauth2.Token, error) {
	token, err := a.opts.Config.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("%s token exchange failed: %w", a.opts.Name, err)
	}
	return token, nil
}

// FetchProfile retrieves the provider's current-user resource and maps
// it through the field map. An unusable grant yields ErrTokenExpired;
// every other failure wraps ErrFetchFailed.
func (a *OAuth2Adapter) FetchProfile(ctx context.Context, tok *oauth2.Token) (auth.Profile, error) {
	if tok == nil || (!tok.Valid() && tok.RefreshToken == "") {
		return auth.Profile{}, ErrTokenExpired
	}

	client := a.opts.Config.Client(ctx, tok)

	resp, err := client.Get(a.opts.ProfileURL)
	if err != nil {
		// The oauth2 transport refreshes lapsed tokens on the fly; a
		// rejected refresh (invalid_grant and friends) surfaces here.
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return auth.Profile{}, ErrTokenExpired
		}
		return auth.Profile{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return auth.Profile{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return auth.Profile{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	email, _ := body[a.opts.Fields.Email].(string)
	name, _ := body[a.opts.Fields.Name].(string)
	if email == "" {
		return auth.Profile{}, fmt.Errorf("%w: response missing %q", ErrFetchFailed, a.opts.Fields.Email)
	}

	return auth.Profile{
		Provider:  a.opts.Name,
		Email:     email,
		FirstName: name,
	}, nil
}
