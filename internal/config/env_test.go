// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"HF_ENDPOINT":        "https://hub.example.com",
		"HF_TOKEN":           "hf_secret",
		"HF_REVISION":        "dev",
		"HF_REQUEST_TIMEOUT": "45s",

		"UPLOAD_OUTPUT_DIR":        "/srv/comfy/output",
		"UPLOAD_REPO_ID":           "alice/model",
		"UPLOAD_SOURCE":            "/tmp/ckpt.safetensors",
		"UPLOAD_PATH_IN_REPO":      "weights",
		"UPLOAD_KIND":              "diffusers",
		"UPLOAD_COMMIT_MESSAGE":    "nightly",
		"UPLOAD_CREATE_MODEL_CARD": "false",
		"UPLOAD_PREVIEW":           "/tmp/preview.png",

		"SERVER_ADDRESS":         "127.0.0.1:8189",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://hub.example.com", cfg.Hub.Endpoint)
	assert.Equal(t, "hf_secret", cfg.Hub.Token)
	assert.Equal(t, "dev", cfg.Hub.Revision)
	assert.Equal(t, 45*time.Second, cfg.Hub.RequestTimeout)

	assert.Equal(t, "/srv/comfy/output", cfg.Upload.OutputDir)
	assert.Equal(t, "alice/model", cfg.Upload.RepoID)
	assert.Equal(t, "/tmp/ckpt.safetensors", cfg.Upload.Source)
	assert.Equal(t, "weights", cfg.Upload.PathInRepo)
	assert.Equal(t, "diffusers", cfg.Upload.Kind)
	assert.Equal(t, "nightly", cfg.Upload.CommitMessage)
	require.NotNil(t, cfg.Upload.CreateModelCard)
	assert.False(t, *cfg.Upload.CreateModelCard)
	assert.Equal(t, "/tmp/preview.png", cfg.Upload.Preview)

	assert.Equal(t, "127.0.0.1:8189", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://huggingface.co", cfg.Hub.Endpoint)
	assert.Equal(t, "main", cfg.Hub.Revision)
	assert.Zero(t, cfg.Hub.RequestTimeout)
	assert.Equal(t, "output", cfg.Upload.OutputDir)
	assert.Equal(t, "ckpt", cfg.Upload.Kind)
	assert.Equal(t, "Upload from ComfyUI", cfg.Upload.CommitMessage)
	assert.Nil(t, cfg.Upload.CreateModelCard)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("HF_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
