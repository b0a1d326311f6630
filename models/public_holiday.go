// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublicHoliday is a holiday record exactly as the remote provider returns it
// from the PublicHolidays and NextPublicHolidays endpoints.
type PublicHoliday struct {
	// Date is the ISO calendar date of the holiday (e.g. "2026-12-25").
	Date string `json:"date"`

	// LocalName is the holiday name in the country's own language.
	LocalName string `json:"localName"`

	// Name is the English holiday name.
	Name string `json:"name"`

	// CountryCode is the ISO 3166-1 alpha-2 code of the country.
	CountryCode string `json:"countryCode"`

	// Fixed reports whether the holiday falls on the same date every year.
	Fixed bool `json:"fixed"`

	// Global reports whether the holiday is observed in the whole country.
	Global bool `json:"global"`

	// Counties lists the subdivisions observing the holiday. Empty or nil
	// when Global is true.
	Counties []string `json:"counties"`

	// LaunchYear is the first year the holiday was observed, nil if unknown.
	LaunchYear *int `json:"launchYear"`

	// Types lists the holiday classifications (e.g. "Public", "Bank").
	Types []string `json:"types"`
}

// PublicHolidayShort is the compact projection of [PublicHoliday] handed to
// every consumer of the holiday service.
type PublicHolidayShort struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}
