package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitPrecondition, exitCode(service.ErrEmptyToken))
	assert.Equal(t, exitPrecondition, exitCode(fmt.Errorf("%w: x", service.ErrSourceNotFound)))
	assert.Equal(t, exitRemoteError, exitCode(fmt.Errorf("%w: %w", service.ErrUpload, adapter.ErrForbidden)))
}

func TestNewUploadRequest(t *testing.T) {
	off := false
	cfg := &config.ClientConfig{
		Hub: config.Hub{Token: "hf_x"},
		Upload: config.Upload{
			RepoID:          "alice/model",
			Source:          "/tmp/ckpt.safetensors",
			PathInRepo:      "weights",
			Kind:            "ckpt",
			CommitMessage:   "msg",
			CreateModelCard: &off,
		},
	}

	req := newUploadRequest(cfg, status.Nop())
	assert.Equal(t, "hf_x", req.Token)
	assert.Equal(t, "alice/model", req.RepoID)
	assert.Equal(t, models.ModelKind("ckpt"), req.Kind)
	assert.False(t, req.WantsModelCard())
	assert.Nil(t, req.Preview)
}

func TestNewUploadRequest_Preview(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "p.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 3, 2))))
	require.NoError(t, f.Close())

	rec := status.NewRecorder(nil)
	req := newUploadRequest(&config.ClientConfig{Upload: config.Upload{Preview: name}}, rec)
	require.NotNil(t, req.Preview)
	assert.Equal(t, 2, req.Preview.Height)
	assert.Equal(t, 3, req.Preview.Width)
	assert.Empty(t, rec.Lines())
}

func TestNewUploadRequest_UnreadablePreviewIsWarning(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "p.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	for _, preview := range []string{filepath.Join(dir, "missing.png"), garbage} {
		rec := status.NewRecorder(nil)
		req := newUploadRequest(&config.ClientConfig{
			Hub:    config.Hub{Token: "hf_x"},
			Upload: config.Upload{RepoID: "alice/model", Preview: preview},
		}, rec)

		assert.Nil(t, req.Preview)
		assert.Equal(t, "hf_x", req.Token)
		assert.Equal(t, "alice/model", req.RepoID)
		lines := rec.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, status.LevelWarn, lines[0].Level)
		assert.Contains(t, lines[0].Message, preview)
	}
}
