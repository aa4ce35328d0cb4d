package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/app"
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/imaging"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
	"github.com/MKhiriev/comfy-hf-uploader/internal/validators"
	"github.com/MKhiriev/comfy-hf-uploader/models"
	"github.com/rs/zerolog"
)

type uploadService struct {
	hub       adapter.HubAdapter
	cards     ModelCardBuilder
	validator validators.Validator
	ids       utils.IDGenerator
	reporter  status.Reporter

	outputDir string
	// tempDir receives the preview PNG; empty means the system temp dir.
	tempDir string

	logger *logger.Logger
}

// NewUploadService wires the upload orchestrator. reporter is used for
// status lines unless the request context carries its own (see
// [status.WithReporter]).
func NewUploadService(hub adapter.HubAdapter, cards ModelCardBuilder, cfg config.Upload, reporter status.Reporter, logger *logger.Logger) UploadService {
	return &uploadService{
		hub:       hub,
		cards:     cards,
		validator: validators.NewUploadRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		reporter:  reporter,
		outputDir: cfg.OutputDir,
		logger:    logger,
	}
}

// uploadMode selects the adapter call of an upload plan.
type uploadMode int

const (
	uploadFolder uploadMode = iota
	uploadFile
)

// uploadPlan is the resolved upload path for one request.
type uploadPlan struct {
	mode       uploadMode
	kind       models.ModelKind
	source     string
	pathInRepo string
}

// planUpload picks the upload path. Diffusers models and checkpoint
// directories are uploaded as folders under pathInRepo; a single checkpoint
// file keeps its base name under pathInRepo.
func planUpload(kind models.ModelKind, isDir bool, source, pathInRepo string) uploadPlan {
	switch {
	case kind == models.Diffusers, isDir:
		return uploadPlan{mode: uploadFolder, kind: kind, source: source, pathInRepo: pathInRepo}
	default:
		return uploadPlan{mode: uploadFile, kind: kind, source: source, pathInRepo: path.Join(pathInRepo, filepath.Base(source))}
	}
}

func (p uploadPlan) describe() string {
	if p.kind == models.Diffusers {
		return "diffusers model"
	}
	return "checkpoint"
}

func (s *uploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadReport, error) {
	report := models.UploadReport{RequestID: s.ids.Generate(), RepoID: req.RepoID}
	rep := status.FromContext(ctx, s.reporter)
	log := s.requestLogger(ctx, report.RequestID, req.RepoID)

	if err := s.validator.Validate(ctx, req, validators.FieldToken); err != nil {
		rep.Error(app.StatusEmptyToken)
		return report, ErrEmptyToken
	}

	source := req.SourcePath
	if source == "" {
		source = s.outputDir
		rep.Warn(app.StatusDefaultSource, source)
	}
	report.SourcePath = source

	if err := s.validator.Validate(ctx, req, validators.FieldRepoID); err != nil {
		rep.Error(app.StatusInvalidRepoID, err)
		return report, fmt.Errorf("%w: %w", ErrInvalidRepoID, err)
	}

	if err := s.validator.Validate(ctx, req, validators.FieldModelKind); err != nil {
		rep.Error(app.StatusInvalidModelKind, err)
		return report, fmt.Errorf("%w: %w", ErrInvalidModelKind, err)
	}
	kind, _ := models.ParseModelKind(string(req.Kind))

	info, err := os.Stat(source)
	if err != nil {
		rep.Error(app.StatusSourceNotFound, source)
		return report, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	repoURL, err := s.hub.CreateRepo(ctx, req.Token, req.RepoID)
	if err != nil {
		rep.Error(app.StatusCreateRepoFailed, err)
		log.Error().Err(err).Msg("create repo failed")
		return report, fmt.Errorf("%w: %w", ErrCreateRepo, err)
	}
	report.RepoURL = repoURL
	rep.Success(app.StatusRepoReady, req.RepoID, repoURL)

	plan := planUpload(kind, info.IsDir(), source, req.PathInRepo)
	rep.Info(app.StatusUploading, plan.describe(), source, req.RepoID)

	uploadURL, err := s.execute(ctx, req, plan)
	if err != nil {
		rep.Error(app.StatusUploadFailed, err)
		log.Error().Err(err).Str("source", source).Msg("upload failed")
		return report, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	report.UploadURL = uploadURL
	rep.Success(app.StatusUploaded, uploadURL)
	log.Info().Str("source", source).Str("url", uploadURL).Msg("model uploaded")

	if !req.WantsModelCard() {
		return report, nil
	}

	if err = s.publishCard(ctx, req, kind); err != nil {
		report.CardError = err.Error()
		rep.Error(app.StatusCardFailed, err)
		log.Warn().Err(err).Msg("model card failed")
		return report, nil
	}
	report.CardCreated = true
	rep.Success(app.StatusCardCreated, req.RepoID)

	return report, nil
}

func (s *uploadService) execute(ctx context.Context, req models.UploadRequest, plan uploadPlan) (string, error) {
	switch plan.mode {
	case uploadFolder:
		return s.hub.UploadFolder(ctx, adapter.FolderUpload{
			Token:         req.Token,
			RepoID:        req.RepoID,
			FolderPath:    plan.source,
			PathInRepo:    plan.pathInRepo,
			CommitMessage: req.Message(),
		})
	case uploadFile:
		return s.hub.UploadFile(ctx, adapter.FileUpload{
			Token:         req.Token,
			RepoID:        req.RepoID,
			LocalPath:     plan.source,
			PathInRepo:    plan.pathInRepo,
			CommitMessage: req.Message(),
		})
	default:
		return "", errors.New("unknown upload mode")
	}
}

func (s *uploadService) publishCard(ctx context.Context, req models.UploadRequest, kind models.ModelKind) error {
	card, err := s.buildCard(ctx, req, kind)
	if err != nil {
		return err
	}
	return s.hub.PushModelCard(ctx, req.Token, req.RepoID, card)
}

// buildCard renders the card. The preview PNG only lives for the duration
// of the Build call.
func (s *uploadService) buildCard(ctx context.Context, req models.UploadRequest, kind models.ModelKind) (models.ModelCard, error) {
	data := models.CardData{
		ModelID:     req.RepoID,
		License:     models.DefaultCardLicense,
		LibraryName: kind.LibraryName(),
		Tags:        slices.Clone(models.DefaultCardTags),
	}

	if req.Preview == nil {
		return s.cards.Build(data, "")
	}

	if err := s.validator.Validate(ctx, req, validators.FieldPreview); err != nil {
		return models.ModelCard{}, err
	}

	previewPath, err := imaging.WritePreviewPNG(*req.Preview, s.tempDir)
	if err != nil {
		return models.ModelCard{}, fmt.Errorf("write preview image: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(previewPath); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("path", previewPath).Msg("remove preview image")
		}
	}()

	return s.cards.Build(data, previewPath)
}

func (s *uploadService) requestLogger(ctx context.Context, requestID, repoID string) zerolog.Logger {
	lc := s.logger.With().Str("request_id", requestID).Str("repo_id", repoID)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		lc = lc.Str("trace_id", traceID)
	}
	return lc.Logger()
}
