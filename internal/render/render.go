// Package render writes holiday query results to the terminal either as
// indented JSON or as a lipgloss table.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-public-holidays/models"
)

// Output formats accepted by [NewRenderer].
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrUnknownFormat is returned by [NewRenderer] for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes query results to w.
type Renderer interface {
	// Holidays writes a list of shortened holidays.
	Holidays(w io.Writer, holidays []models.PublicHolidayShort) error

	// Today writes the answer to "is today a public holiday in country".
	Today(w io.Writer, country string, isHoliday bool) error
}

// NewRenderer returns the renderer for format. Matching ignores case and
// surrounding spaces.
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatTable:
		return tableRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
