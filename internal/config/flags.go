package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// CountryList is a comma-separated list of country codes.
// It implements the flag.Value interface.
type CountryList []string

// String returns the list joined with commas.
func (l *CountryList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas and replaces the list. Repeating the flag
// replaces the earlier value.
func (l *CountryList) Set(s string) error {
	parts := compactList(strings.Split(s, ","))
	if len(parts) == 0 {
		return fmt.Errorf("need at least one country code, received: %q", s)
	}

	*l = parts
	return nil
}

// parseFlags parses configuration flags from args and returns the config
// they describe together with the remaining positional arguments.
//
// Flags:
//
//	-base-url holiday provider base url
//	-countries comma-separated supported country codes
//	-request-timeout provider request timeout (e.g., "5s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var baseURL string
	var countries CountryList
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("holidays", flag.ContinueOnError)
	fs.StringVar(&baseURL, "base-url", "", "Holiday provider base URL")
	fs.Var(&countries, "countries", "Comma-separated supported country codes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SupportedCountries: countries,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
