package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-public-holidays/internal/utils"
	"github.com/MKhiriev/go-public-holidays/models"
)

// Field name constants used to restrict or order validation of a
// [models.ValidationInput].
const (
	// FieldCountry targets the ISO country code of a lookup.
	FieldCountry = "country"

	// FieldYear targets the calendar year of a lookup.
	FieldYear = "year"
)

// defaultHolidayInputFields fixes the check order: when both values are
// invalid the country error is reported.
var defaultHolidayInputFields = []string{FieldCountry, FieldYear}

// HolidayInputValidator checks lookup parameters against the supported
// country allowlist and the current calendar year.
//
// Fields that are nil in the input are exempt from checking, so a single
// validator serves both the {year, country} and the {country}-only lookups.
type HolidayInputValidator struct {
	supportedCountries map[string]struct{}
	clock              utils.Clock
}

// NewHolidayInputValidator constructs a validator over a copy of
// supportedCountries. The current year is read from clock at every call.
func NewHolidayInputValidator(supportedCountries []string, clock utils.Clock) Validator {
	supported := make(map[string]struct{}, len(supportedCountries))
	for _, c := range supportedCountries {
		supported[c] = struct{}{}
	}

	return &HolidayInputValidator{supportedCountries: supported, clock: clock}
}

// Validate accepts models.ValidationInput, *models.ValidationInput or nil.
// A nil input and an input with both fields nil always pass.
//
// Returns ErrUnsupportedType for any other type, ErrUnknownField for an
// unrecognised field name, and a wrapped ErrCountryNotSupported or
// ErrYearNotCurrent carrying the received value.
func (v *HolidayInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case nil:
		return nil
	case models.ValidationInput:
		return v.validateHolidayInput(ctx, value, fields...)
	case *models.ValidationInput:
		if value == nil {
			return nil
		}
		return v.validateHolidayInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *HolidayInputValidator) validateHolidayInput(ctx context.Context, input models.ValidationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultHolidayInputFields
	}

	for _, f := range fields {
		switch f {
		case FieldCountry:
			if input.Country == nil {
				continue
			}
			if !v.isSupportedCountry(*input.Country) {
				return fmt.Errorf("%w, received: %s", ErrCountryNotSupported, *input.Country)
			}
		case FieldYear:
			if input.Year == nil {
				continue
			}
			if *input.Year != v.clock.Now().Year() {
				return fmt.Errorf("%w, received: %d", ErrYearNotCurrent, *input.Year)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isSupportedCountry reports whether country is non-blank and present in the
// allowlist as received.
func (v *HolidayInputValidator) isSupportedCountry(country string) bool {
	if strings.TrimSpace(country) == "" {
		return false
	}

	_, ok := v.supportedCountries[country]
	return ok
}
