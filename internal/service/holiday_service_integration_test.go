package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-public-holidays/internal/logger"
	"github.com/MKhiriev/go-public-holidays/internal/mock"
	"github.com/MKhiriev/go-public-holidays/internal/utils"
	"github.com/MKhiriev/go-public-holidays/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// These tests run the real allowlist validator against a mocked provider so
// that the validation-abort path is observed as "no adapter call".

const currentYear = 2026

func newValidatedSvc(t *testing.T, ctrl *gomock.Controller) (HolidayService, *mock.MockHolidaysAdapter) {
	t.Helper()
	clock := utils.FixedClock(time.Date(currentYear, time.March, 17, 9, 0, 0, 0, time.UTC))
	v := validators.NewHolidayInputValidator([]string{"GB", "US", "FR", "DE", "PL", "NL"}, clock)
	mockAdapter := mock.NewMockHolidaysAdapter(ctrl)

	return NewHolidayService(mockAdapter, v, logger.Nop()), mockAdapter
}

func TestHolidayFlow_ListCurrentYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newValidatedSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().PublicHolidays(ctx, currentYear, "GB").Return(sampleHolidays(), nil)

	got, err := svc.GetListOfPublicHolidays(ctx, currentYear, "GB")
	require.NoError(t, err)
	require.Len(t, got, len(sampleHolidays()))
	assert.Equal(t, sampleShort(), got)
}

func TestHolidayFlow_ListPreviousYearRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetListOfPublicHolidays(context.Background(), currentYear-1, "GB")
	require.ErrorIs(t, err, validators.ErrYearNotCurrent)
	assert.Contains(t, err.Error(), "2025")
}

func TestHolidayFlow_ListUnsupportedCountryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetListOfPublicHolidays(context.Background(), currentYear, "XY")
	require.ErrorIs(t, err, validators.ErrCountryNotSupported)
	assert.Contains(t, err.Error(), "XY")
}

func TestHolidayFlow_ListBothInvalidReportsCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetListOfPublicHolidays(context.Background(), 1999, "XY")
	require.ErrorIs(t, err, validators.ErrCountryNotSupported)
	assert.NotErrorIs(t, err, validators.ErrYearNotCurrent)
}

func TestHolidayFlow_ListBlankCountryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetListOfPublicHolidays(context.Background(), currentYear, "   ")
	require.ErrorIs(t, err, validators.ErrCountryNotSupported)
}

func TestHolidayFlow_ListProviderFailureIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newValidatedSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().PublicHolidays(ctx, currentYear, "GB").Return(nil, errors.New("connection reset"))

	got, err := svc.GetListOfPublicHolidays(ctx, currentYear, "GB")
	require.NoError(t, err)
	assert.Equal(t, 0, len(got))
}

func TestHolidayFlow_Today(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   bool
	}{
		{"holiday", 200, nil, true},
		{"not found", 404, nil, false},
		{"transport failure", 0, errors.New("no route to host"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newValidatedSvc(t, ctrl)
			ctx := context.Background()

			mockAdapter.EXPECT().IsTodayPublicHoliday(ctx, "GB").Return(tt.status, tt.err)

			got, err := svc.CheckIfTodayIsPublicHoliday(ctx, "GB")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHolidayFlow_TodaySkipsYearCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newValidatedSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().IsTodayPublicHoliday(ctx, "US").Return(204, nil)

	got, err := svc.CheckIfTodayIsPublicHoliday(ctx, "US")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHolidayFlow_NextUnsupportedCountryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetNextPublicHolidays(context.Background(), "XY")
	require.ErrorIs(t, err, validators.ErrCountryNotSupported)
	assert.Contains(t, err.Error(), "XY")
}

func TestHolidayFlow_NextLowercaseCountryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedSvc(t, ctrl)

	_, err := svc.GetNextPublicHolidays(context.Background(), "gb")
	require.ErrorIs(t, err, validators.ErrCountryNotSupported)
}
