package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/app"
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/imaging"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK           = 0
	exitRemoteError  = 1
	exitPrecondition = 2
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewConsoleLogger("hf-upload", "info", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("hf-upload", cfg.Log.Level, os.Stderr)
	reporter := status.NewConsoleReporter(os.Stderr)

	hub, err := adapter.NewHTTPHubAdapter(cfg.Hub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hub adapter")
	}

	services, err := service.NewServices(hub, cfg.Upload, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), reporter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	req := newUploadRequest(cfg, reporter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := services.UploadService.Upload(ctx, req)
	if report.RequestID != "" {
		_ = printReport(report)
	}

	stop()
	os.Exit(exitCode(err))
}

// newUploadRequest maps the CLI configuration onto a single upload request.
// The preview file, when set, is decoded here so the service only ever sees
// normalized image batches. An unreadable preview only affects the model
// card, so it is reported as a warning and the upload goes ahead without it.
func newUploadRequest(cfg *config.ClientConfig, reporter status.Reporter) models.UploadRequest {
	req := models.UploadRequest{
		Token:           cfg.Hub.Token,
		RepoID:          cfg.Upload.RepoID,
		SourcePath:      cfg.Upload.Source,
		PathInRepo:      cfg.Upload.PathInRepo,
		Kind:            models.ModelKind(cfg.Upload.Kind),
		CommitMessage:   cfg.Upload.CommitMessage,
		CreateModelCard: cfg.Upload.CreateModelCard,
	}

	if cfg.Upload.Preview != "" {
		batch, err := imaging.DecodeFile(cfg.Upload.Preview)
		if err != nil {
			reporter.Warn(app.StatusPreviewUnreadable, cfg.Upload.Preview, err)
			return req
		}
		req.Preview = &batch
	}

	return req
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case service.IsPrecondition(err):
		return exitPrecondition
	default:
		return exitRemoteError
	}
}

func printReport(report models.UploadReport) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
