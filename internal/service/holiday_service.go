package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-public-holidays/internal/adapter"
	"github.com/MKhiriev/go-public-holidays/internal/logger"
	"github.com/MKhiriev/go-public-holidays/internal/utils"
	"github.com/MKhiriev/go-public-holidays/internal/validators"
	"github.com/MKhiriev/go-public-holidays/models"
)

type holidayService struct {
	holidaysAdapter adapter.HolidaysAdapter
	validator       validators.Validator

	logger *logger.Logger
}

// NewHolidayService wires a [HolidayService] from its collaborators.
func NewHolidayService(holidaysAdapter adapter.HolidaysAdapter, validator validators.Validator, logger *logger.Logger) HolidayService {
	return &holidayService{
		holidaysAdapter: holidaysAdapter,
		validator:       validator,
		logger:          logger,
	}
}

func (h *holidayService) GetListOfPublicHolidays(ctx context.Context, year int, country string) ([]models.PublicHolidayShort, error) {
	input := models.ValidationInput{Year: &year, Country: &country}
	if err := h.validator.Validate(ctx, input); err != nil {
		h.logger.Debug().Err(err).Msg("public holidays lookup rejected")
		return nil, err
	}

	holidays, err := h.holidaysAdapter.PublicHolidays(ctx, year, country)
	if err != nil {
		return h.emptyOnFailure("PublicHolidays", country, err), nil
	}

	return shortenAll(holidays), nil
}

func (h *holidayService) CheckIfTodayIsPublicHoliday(ctx context.Context, country string) (bool, error) {
	input := models.ValidationInput{Country: &country}
	if err := h.validator.Validate(ctx, input); err != nil {
		h.logger.Debug().Err(err).Msg("today check rejected")
		return false, err
	}

	status, err := h.holidaysAdapter.IsTodayPublicHoliday(ctx, country)
	if err != nil {
		return h.falseOnFailure("IsTodayPublicHoliday", country, err), nil
	}

	return status == http.StatusOK, nil
}

func (h *holidayService) GetNextPublicHolidays(ctx context.Context, country string) ([]models.PublicHolidayShort, error) {
	input := models.ValidationInput{Country: &country}
	if err := h.validator.Validate(ctx, input); err != nil {
		h.logger.Debug().Err(err).Msg("next public holidays lookup rejected")
		return nil, err
	}

	holidays, err := h.holidaysAdapter.NextPublicHolidays(ctx, country)
	if err != nil {
		return h.emptyOnFailure("NextPublicHolidays", country, err), nil
	}

	return shortenAll(holidays), nil
}

// emptyOnFailure logs a provider failure and returns the empty result the
// list operations hand back in its place.
func (h *holidayService) emptyOnFailure(op, country string, err error) []models.PublicHolidayShort {
	h.logger.Warn().Err(err).
		Str("operation", op).
		Str("country", country).
		Msg("holiday provider call failed, returning empty list")
	return []models.PublicHolidayShort{}
}

// falseOnFailure is the boolean counterpart of emptyOnFailure.
func (h *holidayService) falseOnFailure(op, country string, err error) bool {
	h.logger.Warn().Err(err).
		Str("operation", op).
		Str("country", country).
		Msg("holiday provider call failed, returning false")
	return false
}

func shortenAll(holidays []models.PublicHoliday) []models.PublicHolidayShort {
	short := make([]models.PublicHolidayShort, 0, len(holidays))
	for _, holiday := range holidays {
		short = append(short, utils.ShortenPublicHoliday(holiday))
	}
	return short
}
