package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/diagnostics"
	"github.com/MKhiriev/tool-suite/internal/handler"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/server"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/MKhiriev/tool-suite/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(app.AppName + "-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	apiCfg := config.NewAPIConfig(cfg)
	diagnostics.CheckAPIConfig(apiCfg, log)

	client, err := adapter.NewHTTPAPIClient(apiCfg, adapter.NewZerologRequestLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(client, apiCfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
