package discord

import (
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/page-sage/page-sage/internal/auth/provider"
)

const (
	providerName = "discord"
	profileURL   = "https://discord.com/api/v6/users/@me"
)

// New initializes the Discord provider.
//
// Discord sign-ins do not stamp login_method; the original platform
// never set it on this path and changing that needs product sign-off.
func New(clientID, clientSecret, redirectURL string) (*provider.OAuth2Adapter, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("discord oauth config missing required fields")
	}

	return provider.NewOAuth2Adapter(provider.Options{
		Name:  providerName,
		Label: "Discord",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     endpoints.Discord,
			Scopes: []string{
				"identify",
				"email",
			},
		},
		ProfileURL: profileURL,
		Fields: provider.FieldMap{
			Email: "email",
			Name:  "username",
		},
		RecordsLoginMethod: false,
	}), nil
}
