package service

import (
	"context"

	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

// Node descriptor constants as registered with the host graph.
const (
	NodeName        = "HuggingFaceUpload"
	NodeDisplayName = "Hugging Face Upload"
	NodeCategory    = "utils"
	NodeFunction    = "upload_to_hf"

	defaultRepoIDHint = "your_username/repo_name"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	node      models.NodeInfo

	logger *logger.Logger
}

// NewAppInfoService builds the node descriptor from the upload defaults in
// cfg. Build metadata is returned as given.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.Upload, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		node:      nodeInfo(cfg),
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfoResponse {
	return s.buildInfo.Response()
}

func (s *appInfoService) GetNodeInfo(ctx context.Context) models.NodeInfo {
	return s.node
}

func nodeInfo(cfg config.Upload) models.NodeInfo {
	repoID := cfg.RepoID
	if repoID == "" {
		repoID = defaultRepoIDHint
	}

	commitMessage := cfg.CommitMessage
	if commitMessage == "" {
		commitMessage = models.DefaultCommitMessage
	}

	kinds := make([]string, 0, len(models.ModelKinds))
	for _, k := range models.ModelKinds {
		kinds = append(kinds, k.String())
	}

	createCard := true
	if cfg.CreateModelCard != nil {
		createCard = *cfg.CreateModelCard
	}

	return models.NodeInfo{
		Name:        NodeName,
		DisplayName: NodeDisplayName,
		Category:    NodeCategory,
		Function:    NodeFunction,
		OutputNode:  true,
		ReturnTypes: []string{},
		Inputs: models.NodeInputs{
			Required: []models.NamedNodeInput{
				{Name: "hf_token", NodeInput: models.NodeInput{Type: "STRING", Default: ""}},
				{Name: "repo_id", NodeInput: models.NodeInput{Type: "STRING", Default: repoID}},
				{Name: "model_path", NodeInput: models.NodeInput{Type: "STRING", Default: cfg.Source}},
				{Name: "path_in_repo", NodeInput: models.NodeInput{Type: "STRING", Default: cfg.PathInRepo}},
				{Name: "model_type", NodeInput: models.NodeInput{Type: "COMBO", Default: cfg.Kind, Options: kinds}},
				{Name: "commit_message", NodeInput: models.NodeInput{Type: "STRING", Default: commitMessage}},
				{Name: "create_model_card", NodeInput: models.NodeInput{Type: "BOOLEAN", Default: createCard}},
			},
			Optional: []models.NamedNodeInput{
				{Name: "images", NodeInput: models.NodeInput{Type: "IMAGE"}},
			},
		},
	}
}
