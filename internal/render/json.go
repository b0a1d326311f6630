package render

import (
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-public-holidays/models"
)

type jsonRenderer struct{}

type todayResult struct {
	Country         string `json:"country"`
	IsPublicHoliday bool   `json:"isPublicHoliday"`
}

func (jsonRenderer) Holidays(w io.Writer, holidays []models.PublicHolidayShort) error {
	if holidays == nil {
		holidays = []models.PublicHolidayShort{}
	}
	return encode(w, holidays)
}

func (jsonRenderer) Today(w io.Writer, country string, isHoliday bool) error {
	return encode(w, todayResult{Country: country, IsPublicHoliday: isHoliday})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
