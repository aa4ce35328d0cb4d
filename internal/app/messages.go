// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// upload service and the node service handlers.
//
// Msg* constants are written into HTTP response bodies. Status* constants
// are format strings for the coloured status lines shown to the user; their
// wording matches what the upload node has always printed, so hosts that
// scrape the console keep working.
package app

const (
	// MsgInvalidJSON is returned when the upload request body cannot be
	// decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgRequestTooLarge is returned when the upload request body exceeds the
	// node service limit.
	MsgRequestTooLarge = "request body too large"
)

const (
	StatusEmptyToken = "Hugging Face Hub token is empty. Aborting upload."

	// StatusDefaultSource takes the output directory.
	StatusDefaultSource = "Model path is empty, defaulting to ComfyUI output directory: %s"

	StatusInvalidRepoID    = "Invalid repo_id: %v"
	StatusInvalidModelKind = "Invalid model_type: %v"
	StatusSourceNotFound   = "Model path does not exist: %s"

	StatusCreateRepoFailed = "Error creating repo: %v"

	// StatusRepoReady takes the repo id and its URL.
	StatusRepoReady = "Repo '%s' created or already exists: %s"

	// StatusUploading takes the upload description, the source and the repo id.
	StatusUploading = "Uploading %s from '%s' to '%s'"

	StatusUploadFailed = "Error uploading model: %v"
	StatusUploaded     = "Model uploaded to: %s"

	// StatusPreviewUnreadable takes the preview path and the decode error.
	StatusPreviewUnreadable = "Could not read preview image '%s', continuing without it: %v"

	StatusCardFailed  = "Error creating model card: %v"
	StatusCardCreated = "Model card created in '%s'"
)
