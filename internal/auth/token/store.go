package token

import (
	"context"

	"golang.org/x/oauth2"
)

// Store persists OAuth token records per (flow id, provider). The flow
// id is a long-lived browser cookie, so a grant obtained in the callback
// is still on hand when the sign-in route is re-entered, and on logout
// for revocation. Get returns (nil, nil) when no record exists.
type Store interface {
	Save(ctx context.Context, flowID, provider string, tok *oauth2.Token) error
	Get(ctx context.Context, flowID, provider string) (*oauth2.Token, error)
	Delete(ctx context.Context, flowID, provider string) error
}

// Authorized reports whether a stored token record is usable: either the
// access token has not lapsed, or a refresh token can replace it.
func Authorized(tok *oauth2.Token) bool {
	return tok != nil && (tok.Valid() || tok.RefreshToken != "")
}
