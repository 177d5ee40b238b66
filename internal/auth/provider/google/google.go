package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/page-sage/page-sage/internal/auth/provider"
)

const (
	providerName = "google"
	issuerURL    = "https://accounts.google.com"
	userInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	revokeURL    = "https://accounts.google.com/o/oauth2/revoke"
)

// Provider is the Google adapter. Endpoints come from OIDC discovery,
// and id_tokens returned alongside the access token are verified before
// the grant is accepted.
type Provider struct {
	*provider.OAuth2Adapter
	verifier *oidc.IDTokenVerifier
}

// New initializes the Google provider using OIDC discovery.
func New(ctx context.Context, clientID, clientSecret, redirectURL string) (*Provider, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	adapter := provider.NewOAuth2Adapter(provider.Options{
		Name:  providerName,
		Label: "Google",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     oidcProvider.Endpoint(),
			Scopes: []string{
				oidc.ScopeOpenID,
				"profile",
				"email",
			},
		},
		ProfileURL: userInfoURL,
		Fields: provider.FieldMap{
			Email: "email",
			Name:  "given_name",
		},
		RecordsLoginMethod: true,
		RevokeURL:          revokeURL,
	})

	return &Provider{
		OAuth2Adapter: adapter,
		verifier:      verifier,
	}, nil
}

// Exchange trades the code for a token and verifies the id_token when
// Google returns one.
func (p *Provider) Exchange(ctx context.Context, code string, codeVerifier string) (*oauth2.Token, error) {
	token, err := p.OAuth2Adapter.Exchange(ctx, code, codeVerifier)
	if err != nil {
		return nil, err
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if _, err := p.verifier.Verify(ctx, rawIDToken); err != nil {
			return nil, fmt.Errorf("google id_token verification failed: %w", err)
		}
	}

	return token, nil
}
