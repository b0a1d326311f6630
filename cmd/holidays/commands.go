package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-public-holidays/internal/render"
	"github.com/MKhiriev/go-public-holidays/internal/service"
	"github.com/MKhiriev/go-public-holidays/internal/utils"
)

const usage = `usage: holidays [config flags] <command> [command flags]

commands:
  list    -country CC [-year YYYY] [-format json|table]
  next    -country CC [-format json|table]
  today   -country CC [-format json|table]
  version
`

var (
	// ErrNoCommand is returned when no subcommand is given.
	ErrNoCommand = errors.New("no command provided")
	// ErrUnknownCommand is returned for an unrecognised subcommand.
	ErrUnknownCommand = errors.New("unknown command")
)

type commands struct {
	svc    service.HolidayService
	clock  utils.Clock
	stdout io.Writer
	stderr io.Writer
}

func newCommands(svc service.HolidayService, clock utils.Clock, stdout, stderr io.Writer) *commands {
	return &commands{svc: svc, clock: clock, stdout: stdout, stderr: stderr}
}

// run dispatches args[0] to its subcommand.
func (c *commands) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return ErrNoCommand
	}

	switch args[0] {
	case "list":
		return c.list(ctx, args[1:])
	case "next":
		return c.next(ctx, args[1:])
	case "today":
		return c.today(ctx, args[1:])
	case "version":
		printBuildInfo(c.stdout)
		return nil
	case "help", "-h", "-help", "--help":
		fmt.Fprint(c.stdout, usage)
		return nil
	default:
		fmt.Fprint(c.stderr, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

func (c *commands) list(ctx context.Context, args []string) error {
	var country, format string
	var year int

	fs := c.newFlagSet("list", &country, &format)
	fs.IntVar(&year, "year", c.clock.Now().Year(), "Calendar year (must be the current one)")
	r, err := c.parse(fs, args, &format)
	if err != nil {
		return err
	}

	holidays, err := c.svc.GetListOfPublicHolidays(ctx, year, country)
	if err != nil {
		return err
	}
	return r.Holidays(c.stdout, holidays)
}

func (c *commands) next(ctx context.Context, args []string) error {
	var country, format string

	fs := c.newFlagSet("next", &country, &format)
	r, err := c.parse(fs, args, &format)
	if err != nil {
		return err
	}

	holidays, err := c.svc.GetNextPublicHolidays(ctx, country)
	if err != nil {
		return err
	}
	return r.Holidays(c.stdout, holidays)
}

func (c *commands) today(ctx context.Context, args []string) error {
	var country, format string

	fs := c.newFlagSet("today", &country, &format)
	r, err := c.parse(fs, args, &format)
	if err != nil {
		return err
	}

	isHoliday, err := c.svc.CheckIfTodayIsPublicHoliday(ctx, country)
	if err != nil {
		return err
	}
	return r.Today(c.stdout, country, isHoliday)
}

func (c *commands) newFlagSet(name string, country, format *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.StringVar(country, "country", "", "ISO 3166-1 alpha-2 country code")
	fs.StringVar(format, "format", render.FormatJSON, "Output format: json or table")
	return fs
}

func (c *commands) parse(fs *flag.FlagSet, args []string, format *string) (render.Renderer, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}

	return render.NewRenderer(*format)
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
