package config

import "github.com/kelseyhightower/envconfig"

// Config is everything injectable: the store endpoint, the static consumer
// credential pair (configuration, never hard-coded constants) and local
// client settings.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8080"`

	StoreAPIURL    string `envconfig:"STORE_API_URL" required:"true"`
	ConsumerKey    string `envconfig:"STORE_CONSUMER_KEY" required:"true"`
	ConsumerSecret string `envconfig:"STORE_CONSUMER_SECRET" required:"true"`

	// TokenFile is the client-local storage slot for the session token.
	TokenFile string `envconfig:"AUTH_TOKEN_FILE" default:".auth_token"`

	// DemoFallback substitutes a clearly marked placeholder catalog when a
	// catalog read fails. Off by default; cart and auth never fall back.
	DemoFallback bool `envconfig:"STORE_DEMO_FALLBACK" default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
