// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-public-holidays/internal/config"
	"github.com/MKhiriev/go-public-holidays/internal/logger"
	"github.com/MKhiriev/go-public-holidays/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpHolidaysAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpHolidaysAdapter {
	t.Helper()
	a, err := NewHTTPHolidaysAdapter(config.ClientAdapter{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpHolidaysAdapter)
}

func testHolidays() []models.PublicHoliday {
	return []models.PublicHoliday{
		{
			Date:        "2026-01-01",
			LocalName:   "New Year's Day",
			Name:        "New Year's Day",
			CountryCode: "GB",
			Fixed:       false,
			Global:      false,
			Counties:    []string{"GB-NIR"},
			Types:       []string{"Public"},
		},
		{
			Date:        "2026-12-25",
			LocalName:   "Christmas Day",
			Name:        "Christmas Day",
			CountryCode: "GB",
			Fixed:       false,
			Global:      true,
			Types:       []string{"Public"},
		},
	}
}

// ── PublicHolidays ──────────────────────────────────────────────────────────

func TestPublicHolidays_Success(t *testing.T) {
	want := testHolidays()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/PublicHolidays/2026/GB", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/v3")
	got, err := a.PublicHolidays(context.Background(), 2026, "GB")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPublicHolidays_DecodesLaunchYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2026-05-04","localName":"Early May Bank Holiday","name":"Early May Bank Holiday","countryCode":"GB","fixed":false,"global":true,"counties":null,"launchYear":1978,"types":["Public"]}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.PublicHolidays(context.Background(), 2026, "GB")

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].LaunchYear)
	assert.Equal(t, 1978, *got[0].LaunchYear)
	assert.Nil(t, got[0].Counties)
}

func TestPublicHolidays_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublicHolidays(context.Background(), 2026, "XY")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicHolidays_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublicHolidays(context.Background(), 2026, "GB")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestPublicHolidays_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.PublicHolidays(context.Background(), 2026, "GB")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "public holidays request")
}

func TestPublicHolidays_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewHTTPHolidaysAdapter(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.PublicHolidays(context.Background(), 2026, "GB")
	require.Error(t, err)
}

func TestPublicHolidays_SendsRequestID(t *testing.T) {
	var ids []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(requestIDHeader))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublicHolidays(context.Background(), 2026, "GB")
	require.NoError(t, err)
	_, err = a.PublicHolidays(context.Background(), 2026, "GB")
	require.NoError(t, err)

	require.Len(t, ids, 2)
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

// ── NextPublicHolidays ──────────────────────────────────────────────────────

func TestNextPublicHolidays_Success(t *testing.T) {
	want := testHolidays()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/NextPublicHolidays/GB", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.NextPublicHolidays(context.Background(), "GB")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNextPublicHolidays_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.NextPublicHolidays(context.Background(), "GB")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNextPublicHolidays_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.NextPublicHolidays(context.Background(), "XY")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── IsTodayPublicHoliday ────────────────────────────────────────────────────

func TestIsTodayPublicHoliday_Status(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"holiday", http.StatusOK},
		{"not a holiday", http.StatusNoContent},
		{"unknown country", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/IsTodayPublicHoliday/GB", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.IsTodayPublicHoliday(context.Background(), "GB")

			require.NoError(t, err)
			assert.Equal(t, tt.status, got)
		})
	}
}

func TestIsTodayPublicHoliday_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.IsTodayPublicHoliday(context.Background(), "GB")

	require.Error(t, err)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"ok", http.StatusOK, nil},
		{"no content", http.StatusNoContent, nil},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"teapot", http.StatusTeapot, ErrUnexpectedStatus},
		{"redirect", http.StatusMultipleChoices, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			resp, err := a.newRequest(context.Background()).Get("/")
			require.NoError(t, err)

			got := mapHTTPError(resp)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https with path", "https://date.nager.at/api/v3", "https://date.nager.at/api/v3", false},
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "date.nager.at/api/v3", "https://date.nager.at/api/v3", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding spaces", "  http://localhost:8080  ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPHolidaysAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPHolidaysAdapter(config.ClientAdapter{}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter base url")
}
