package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-public-holidays/internal/adapter"
	"github.com/MKhiriev/go-public-holidays/internal/config"
	"github.com/MKhiriev/go-public-holidays/internal/logger"
	"github.com/MKhiriev/go-public-holidays/internal/service"
	"github.com/MKhiriev/go-public-holidays/internal/utils"
	"github.com/MKhiriev/go-public-holidays/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("holidays")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	levelLog, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = levelLog
	log.Debug().Any("config", cfg).Msg("received configs")

	holidaysAdapter, err := adapter.NewHTTPHolidaysAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create holidays adapter")
	}

	validator := validators.NewHolidayInputValidator(cfg.App.SupportedCountries, utils.RealClock{})
	svc := service.NewHolidayService(holidaysAdapter, validator, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := newCommands(svc, utils.RealClock{}, os.Stdout, os.Stderr)
	if err = cli.run(ctx, args); err != nil {
		stop()
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}
