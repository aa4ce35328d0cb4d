package service

import (
	"context"

	"github.com/MKhiriev/comfy-hf-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UploadService runs the upload node: validate inputs, ensure the repo,
// upload the model and optionally publish a model card.
type UploadService interface {
	// Upload performs one invocation. The report is filled as far as the
	// invocation got, also when an error is returned. Model card failures
	// are recorded in the report and never returned as errors.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadReport, error)
}

// ModelCardBuilder renders a model card. imagePath is an optional preview
// image; implementations must not depend on the file after returning.
type ModelCardBuilder interface {
	Build(data models.CardData, imagePath string) (models.ModelCard, error)
}

// AppInfoService exposes build metadata and the node descriptor.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
	GetNodeInfo(ctx context.Context) models.NodeInfo
}
