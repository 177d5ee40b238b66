package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything page-sage reads from the environment.
// Provider credentials come from the respective developer consoles;
// SEARCH_KEY is the third-party search widget credential passed
// through to the search pages.
type Config struct {
	AppPort string `env:"APP_PORT" env-default:"8080"`
	BaseURL string `env:"BASE_URL" env-default:"http://localhost:8080"`
	AppEnv  string `env:"APP_ENV" env-default:"dev"`

	SearchKey string `env:"SEARCH_KEY"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	FacebookClientID     string `env:"FACEBOOK_CLIENT_ID"`
	FacebookClientSecret string `env:"FACEBOOK_CLIENT_SECRET"`

	DiscordClientID     string `env:"DISCORD_CLIENT_ID"`
	DiscordClientSecret string `env:"DISCORD_CLIENT_SECRET"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DatabaseDSN string `env:"DATABASE_DSN" env-required:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CallbackURL returns the OAuth redirect URL registered for a provider.
func (c Config) CallbackURL(provider string) string {
	return c.BaseURL + "/oauth/callback/" + provider
}
