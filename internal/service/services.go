package service

import (
	"fmt"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/modelcard"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

type Services struct {
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(hub adapter.HubAdapter, cfg config.Upload, buildInfo models.AppBuildInfo, reporter status.Reporter, logger *logger.Logger) (*Services, error) {
	cards, err := modelcard.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("model card builder: %w", err)
	}

	return &Services{
		UploadService:  NewUploadService(hub, cards, cfg, reporter, logger),
		AppInfoService: NewAppInfoService(buildInfo, cfg, logger),
	}, nil
}
