// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the holiday business layer.
//
// [HolidayService] validates caller input, delegates to the provider
// adapter, and projects full provider records into
// [models.PublicHolidayShort]. Validation failures are returned to the
// caller; provider failures are logged and mapped to an empty list or false.
package service

import (
	"context"

	"github.com/MKhiriev/go-public-holidays/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/holiday_service_mock.go -package=mock

// HolidayService exposes the public-holiday queries.
type HolidayService interface {
	// GetListOfPublicHolidays returns the shortened holidays of year in
	// country. year must be the current year and country a supported code.
	// Provider failures yield an empty, non-nil slice and a nil error.
	GetListOfPublicHolidays(ctx context.Context, year int, country string) ([]models.PublicHolidayShort, error)

	// CheckIfTodayIsPublicHoliday reports whether today is a public holiday
	// in country. Only a provider status of 200 yields true.
	CheckIfTodayIsPublicHoliday(ctx context.Context, country string) (bool, error)

	// GetNextPublicHolidays returns the shortened upcoming holidays of
	// country. Provider failures yield an empty, non-nil slice.
	GetNextPublicHolidays(ctx context.Context, country string) ([]models.PublicHolidayShort, error)
}
