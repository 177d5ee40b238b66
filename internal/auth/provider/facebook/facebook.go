package facebook

import (
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/page-sage/page-sage/internal/auth/provider"
)

const (
	providerName = "facebook"
	profileURL   = "https://graph.facebook.com/me?fields=id,first_name,email"
)

// New initializes the Facebook provider.
func New(clientID, clientSecret, redirectURL string) (*provider.OAuth2Adapter, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("facebook oauth config missing required fields")
	}

	return provider.NewOAuth2Adapter(provider.Options{
		Name:  providerName,
		Label: "Facebook",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     facebook.Endpoint,
			Scopes: []string{
				"email",
				"public_profile",
			},
		},
		ProfileURL: profileURL,
		Fields: provider.FieldMap{
			Email: "email",
			Name:  "first_name",
		},
		RecordsLoginMethod: true,
	}), nil
}
