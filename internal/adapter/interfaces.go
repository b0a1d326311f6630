// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote public-holiday
// provider.
//
// The primary abstraction is [HolidaysAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPHolidaysAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-public-holidays/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/holidays_adapter_mock.go -package=mock

// HolidaysAdapter defines communication with the public-holiday provider.
// Implementations issue exactly one request per call and do not validate
// their arguments.
type HolidaysAdapter interface {
	// PublicHolidays fetches every holiday of year in country from
	// GET /PublicHolidays/{year}/{countryCode}. Returns a wrapped sentinel
	// error on a non-2xx status or an undecodable body.
	PublicHolidays(ctx context.Context, year int, country string) ([]models.PublicHoliday, error)

	// NextPublicHolidays fetches the upcoming holidays of country from
	// GET /NextPublicHolidays/{countryCode}.
	NextPublicHolidays(ctx context.Context, country string) ([]models.PublicHoliday, error)

	// IsTodayPublicHoliday calls GET /IsTodayPublicHoliday/{countryCode} and
	// returns the raw response status code. The body is ignored. An error is
	// returned only when no response was received.
	IsTodayPublicHoliday(ctx context.Context, country string) (int, error)
}
