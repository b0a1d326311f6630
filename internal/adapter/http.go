package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-public-holidays/internal/config"
	"github.com/MKhiriev/go-public-holidays/internal/logger"
	"github.com/MKhiriev/go-public-holidays/internal/utils"
	"github.com/MKhiriev/go-public-holidays/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

const (
	publicHolidaysPath       = "/PublicHolidays/{year}/{countryCode}"
	nextPublicHolidaysPath   = "/NextPublicHolidays/{countryCode}"
	isTodayPublicHolidayPath = "/IsTodayPublicHoliday/{countryCode}"
)

type httpHolidaysAdapter struct {
	client     *utils.HTTPClient
	requestIDs *utils.RequestIDGenerator

	logger *logger.Logger
}

// NewHTTPHolidaysAdapter constructs a resty implementation of
// [HolidaysAdapter]. It normalises adapterCfg.BaseURL, applies
// adapterCfg.RequestTimeout when positive, and registers a response hook
// that logs every provider call with its request ID.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPHolidaysAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (HolidaysAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	a := &httpHolidaysAdapter{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     log.GetChildLogger(),
	}
	a.client.OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PublicHolidays implements [HolidaysAdapter].
func (h *httpHolidaysAdapter) PublicHolidays(ctx context.Context, year int, country string) ([]models.PublicHoliday, error) {
	resp, err := h.newRequest(ctx).
		SetPathParam("year", strconv.Itoa(year)).
		SetPathParam("countryCode", country).
		Get(publicHolidaysPath)
	if err != nil {
		return nil, fmt.Errorf("public holidays request: %w", err)
	}

	return decodeHolidays(resp)
}

// NextPublicHolidays implements [HolidaysAdapter].
func (h *httpHolidaysAdapter) NextPublicHolidays(ctx context.Context, country string) ([]models.PublicHoliday, error) {
	resp, err := h.newRequest(ctx).
		SetPathParam("countryCode", country).
		Get(nextPublicHolidaysPath)
	if err != nil {
		return nil, fmt.Errorf("next public holidays request: %w", err)
	}

	return decodeHolidays(resp)
}

// IsTodayPublicHoliday implements [HolidaysAdapter].
func (h *httpHolidaysAdapter) IsTodayPublicHoliday(ctx context.Context, country string) (int, error) {
	resp, err := h.newRequest(ctx).
		SetPathParam("countryCode", country).
		Get(isTodayPublicHolidayPath)
	if err != nil {
		return 0, fmt.Errorf("is today public holiday request: %w", err)
	}

	return resp.StatusCode(), nil
}

func (h *httpHolidaysAdapter) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(requestIDHeader, h.requestIDs.Generate())
}

func (h *httpHolidaysAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("holiday provider responded")
	return nil
}

func decodeHolidays(resp *resty.Response) ([]models.PublicHoliday, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var holidays []models.PublicHoliday
	if err := json.Unmarshal(resp.Body(), &holidays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	return holidays, nil
}
