package utils

import "github.com/MKhiriev/go-public-holidays/models"

// ShortenPublicHoliday projects a full provider record down to the three
// fields consumers use. The input is not modified.
func ShortenPublicHoliday(holiday models.PublicHoliday) models.PublicHolidayShort {
	return models.PublicHolidayShort{
		Date:      holiday.Date,
		LocalName: holiday.LocalName,
		Name:      holiday.Name,
	}
}
