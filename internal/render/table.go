package render

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-public-holidays/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	yesStyle    = lipgloss.NewStyle().Bold(true)
	noStyle     = lipgloss.NewStyle().Faint(true)
)

type tableRenderer struct{}

func (tableRenderer) Holidays(w io.Writer, holidays []models.PublicHolidayShort) error {
	if len(holidays) == 0 {
		_, err := fmt.Fprintln(w, noStyle.Render("No public holidays found."))
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("DATE", "LOCAL NAME", "NAME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, h := range holidays {
		t.Row(h.Date, h.LocalName, h.Name)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (tableRenderer) Today(w io.Writer, country string, isHoliday bool) error {
	answer := noStyle.Render("not a public holiday")
	if isHoliday {
		answer = yesStyle.Render("a public holiday")
	}

	_, err := fmt.Fprintf(w, "Today is %s in %s.\n", answer, country)
	return err
}
