// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if len(cfg.App.SupportedCountries) == 0 {
		return fmt.Errorf("%w: no supported countries", ErrInvalidAppConfigs)
	}

	raw := cfg.Adapter.BaseURL
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
