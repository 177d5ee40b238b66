package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func namedAdapter(name string) *OAuth2Adapter {
	return NewOAuth2Adapter(Options{
		Name:   name,
		Label:  name,
		Config: &oauth2.Config{},
	})
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(
		namedAdapter("google"),
		namedAdapter("facebook"),
		namedAdapter("discord"),
	)

	p, err := r.Get("facebook")
	require.NoError(t, err)
	assert.Equal(t, "facebook", p.Name())

	_, err = r.Get("github")
	assert.Error(t, err)

	assert.Equal(t, []string{"google", "facebook", "discord"}, r.Names())
}
