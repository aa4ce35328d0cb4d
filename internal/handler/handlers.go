package handler

import (
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/handler/http"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, reporter status.Reporter, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, reporter, logger)}, nil
}
