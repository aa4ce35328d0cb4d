package http

import (
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
)

// maxUploadRequestSize bounds the JSON body of an upload request. Preview
// tensors are sent inline, so this is far above what the other inputs need.
const maxUploadRequestSize = 256 << 20

type Handler struct {
	services *service.Services
	reporter status.Reporter
	traceIDs utils.IDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Status lines of every upload are
// forwarded to reporter in addition to being returned to the caller.
func NewHandler(services *service.Services, reporter status.Reporter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		reporter: reporter,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
