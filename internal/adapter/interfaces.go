// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer towards the Hugging Face Hub.
//
// The primary abstraction is [HubAdapter], which decouples the upload service
// from the Hub REST API. The package ships an HTTP implementation
// ([NewHTTPHubAdapter]) built on resty that creates repositories, classifies
// files through the preupload endpoint, transfers large files with the git-lfs
// "basic" protocol and records everything in a single NDJSON commit.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/comfy-hf-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/hub_adapter_mock.go -package=mock

// HubAdapter is the registry client consumed by the upload service.
// Every call is synchronous and attempted exactly once; the token travels
// with each call so that no credentials are shared between invocations.
type HubAdapter interface {
	// CreateRepo creates the model repository repoID. An already existing
	// repository is not an error. Returns the repository URL.
	CreateRepo(ctx context.Context, token, repoID string) (string, error)

	// UploadFolder uploads every file below req.FolderPath in a single
	// commit, placing them under req.PathInRepo. Returns the tree URL of the
	// uploaded folder.
	UploadFolder(ctx context.Context, req FolderUpload) (string, error)

	// UploadFile uploads req.LocalPath to req.PathInRepo in a single commit.
	// Returns the blob URL of the uploaded file.
	UploadFile(ctx context.Context, req FileUpload) (string, error)

	// PushModelCard publishes card as README.md at the repository root,
	// together with its assets, in a single commit.
	PushModelCard(ctx context.Context, token, repoID string, card models.ModelCard) error
}

// FolderUpload describes a folder upload.
type FolderUpload struct {
	Token         string
	RepoID        string
	FolderPath    string
	PathInRepo    string
	CommitMessage string
}

// FileUpload describes a single-file upload. PathInRepo is the full
// destination path of the file, including its name.
type FileUpload struct {
	Token         string
	RepoID        string
	LocalPath     string
	PathInRepo    string
	CommitMessage string
}
