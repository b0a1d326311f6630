package config

import "strings"

// DefaultBaseURL is the public Nager.Date v3 API root.
const DefaultBaseURL = "https://date.nager.at/api/v3"

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// DefaultSupportedCountries is the allowlist used when none is configured.
var DefaultSupportedCountries = []string{"GB", "US", "FR", "DE", "PL", "NL"}

func (cfg *StructuredConfig) applyDefaults() {
	cfg.App.SupportedCountries = compactList(cfg.App.SupportedCountries)
	if len(cfg.App.SupportedCountries) == 0 {
		cfg.App.SupportedCountries = append([]string(nil), DefaultSupportedCountries...)
	}

	cfg.Adapter.BaseURL = strings.TrimSpace(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}

	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// compactList trims every entry and drops the blank ones.
func compactList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
