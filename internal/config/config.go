// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// uploader. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// Hub holds the registry endpoint and credentials.
	Hub Hub `envPrefix:"HF_"`

	// Upload holds per-invocation defaults for the upload node.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Server holds the node service listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Hub holds connection settings for the Hugging Face Hub.
type Hub struct {
	// Endpoint is the Hub base URL. Mirrors HF_ENDPOINT used by the official
	// client, so private Hub mirrors work without extra configuration.
	// Env: HF_ENDPOINT
	Endpoint string `env:"ENDPOINT" envDefault:"https://huggingface.co"`

	// Token is the access token used when the request does not carry one.
	// Env: HF_TOKEN
	Token string `env:"TOKEN"`

	// Revision is the branch commits are created on.
	// Env: HF_REVISION
	Revision string `env:"REVISION" envDefault:"main"`

	// RequestTimeout bounds every outbound request. Zero means no timeout.
	// Env: HF_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upload holds the node inputs that can be preset from configuration.
type Upload struct {
	// OutputDir is the host output directory used when no source path is
	// given.
	// Env: UPLOAD_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR" envDefault:"output"`

	// Env: UPLOAD_REPO_ID
	RepoID string `env:"REPO_ID"`

	// Env: UPLOAD_SOURCE
	Source string `env:"SOURCE"`

	// Env: UPLOAD_PATH_IN_REPO
	PathInRepo string `env:"PATH_IN_REPO"`

	// Kind is "ckpt" or "diffusers".
	// Env: UPLOAD_KIND
	Kind string `env:"KIND" envDefault:"ckpt"`

	// Env: UPLOAD_COMMIT_MESSAGE
	CommitMessage string `env:"COMMIT_MESSAGE" envDefault:"Upload from ComfyUI"`

	// CreateModelCard is tri-state so that an explicit false survives merging.
	// Env: UPLOAD_CREATE_MODEL_CARD
	CreateModelCard *bool `env:"CREATE_MODEL_CARD"`

	// Preview is a PNG or JPEG file embedded into the model card (CLI only).
	// Env: UPLOAD_PREVIEW
	Preview string `env:"PREVIEW"`
}

// Server holds network and timeout settings for the node service.
type Server struct {
	// HTTPAddress is the TCP address the node service listens on,
	// in "host:port" format (e.g. "127.0.0.1:8189").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a request.
	// Uploads themselves are not bounded by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
