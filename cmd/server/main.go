package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/handler"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/server"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("hf-upload-node", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("hf-upload-node", cfg.Log.Level)
	log.Debug().Str("endpoint", cfg.Hub.Endpoint).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	reporter := status.NewConsoleReporter(os.Stderr)

	hub, err := adapter.NewHTTPHubAdapter(cfg.Hub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hub adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(hub, cfg.Upload, buildInfo, reporter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, reporter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
