package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings derived from the shared structured
// config.
type ClientApp struct {
	// SupportedCountries is the country allowlist handed to the validator.
	SupportedCountries []string
}

// ClientAdapter holds network settings used by the provider transport layer.
type ClientAdapter struct {
	// BaseURL is the provider root URL.
	BaseURL string
	// RequestTimeout is the timeout for outbound provider requests.
	// Zero means no client-side timeout.
	RequestTimeout time.Duration
}

// ClientLog holds logger settings.
type ClientLog struct {
	// Level is a zerolog level name.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Adapter contains the provider address and timeout.
	Adapter ClientAdapter
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// The returned slice holds the arguments left after flag parsing, which
// start with the subcommand name.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SupportedCountries: append([]string(nil), cfg.App.SupportedCountries...),
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, rest, nil
}
