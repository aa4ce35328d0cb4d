// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/comfy-hf-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		Token:      "hf_token",
		RepoID:     "alice/model",
		SourcePath: "/tmp/ckpt.safetensors",
		PathInRepo: "weights",
		Kind:       "ckpt",
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUploadRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("UploadRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUploadRequest()))
	})

	t.Run("UploadRequest pointer", func(t *testing.T) {
		r := validUploadRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("repo id string", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, "alice/model"))
		require.ErrorIs(t, v.Validate(ctx, "alice//model"), ErrInvalidRepoID)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validUploadRequest(), "nope"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateUploadRequest
// ---------------------------------------------------------------------------

func TestValidateUploadRequest(t *testing.T) {
	v := NewUploadRequestValidator()
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		r := validUploadRequest()
		r.Token = ""
		require.ErrorIs(t, v.Validate(ctx, r, FieldToken), ErrEmptyToken)
	})

	t.Run("whitespace token is left to the hub", func(t *testing.T) {
		r := validUploadRequest()
		r.Token = "  "
		require.NoError(t, v.Validate(ctx, r, FieldToken))
	})

	t.Run("token checked before repo id by default", func(t *testing.T) {
		r := validUploadRequest()
		r.Token = ""
		r.RepoID = "bad//id"
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyToken)
	})

	t.Run("invalid repo id", func(t *testing.T) {
		r := validUploadRequest()
		r.RepoID = "-model"
		require.ErrorIs(t, v.Validate(ctx, r, FieldRepoID), ErrInvalidRepoID)
	})

	t.Run("only requested fields are checked", func(t *testing.T) {
		r := validUploadRequest()
		r.Token = ""
		require.NoError(t, v.Validate(ctx, r, FieldRepoID))
	})

	t.Run("empty kind defaults to checkpoint", func(t *testing.T) {
		r := validUploadRequest()
		r.Kind = ""
		require.NoError(t, v.Validate(ctx, r, FieldModelKind))
	})

	t.Run("unknown kind", func(t *testing.T) {
		r := validUploadRequest()
		r.Kind = "lora"
		require.ErrorIs(t, v.Validate(ctx, r, FieldModelKind), ErrInvalidModelKind)
	})

	t.Run("valid preview", func(t *testing.T) {
		r := validUploadRequest()
		r.Preview = &models.ImageBatch{Batch: 1, Height: 1, Width: 2, Channels: 3, Data: make([]float32, 6)}
		require.NoError(t, v.Validate(ctx, r, FieldPreview))
	})

	t.Run("malformed preview", func(t *testing.T) {
		r := validUploadRequest()
		r.Preview = &models.ImageBatch{Batch: 1, Height: 2, Width: 2, Channels: 3, Data: make([]float32, 5)}
		err := v.Validate(ctx, r, FieldPreview)
		require.ErrorIs(t, err, ErrInvalidPreview)
		assert.ErrorIs(t, err, models.ErrInvalidImageBatch)
	})
}

// ---------------------------------------------------------------------------
// TestValidateRepoID
// ---------------------------------------------------------------------------

func TestValidateRepoID(t *testing.T) {
	valid := []string{
		"model",
		"alice/model",
		"alice/my-model_v1.5",
		"Org.Name/sd_xl",
		"a/b",
		strings.Repeat("a", 96),
		"alice/" + strings.Repeat("b", 96),
	}
	for _, id := range valid {
		t.Run("valid "+id, func(t *testing.T) {
			assert.NoError(t, ValidateRepoID(id))
		})
	}

	invalid := []string{
		"",
		"alice/",
		"/model",
		"alice/team/model",
		"alice model",
		"alice/mödel",
		"-model",
		"model-",
		".model",
		"model.",
		"alice/mo--del",
		"alice/mo..del",
		"alice/model.git",
		strings.Repeat("a", 97),
		"alice/" + strings.Repeat("b", 97),
	}
	for _, id := range invalid {
		t.Run("invalid "+id, func(t *testing.T) {
			assert.ErrorIs(t, ValidateRepoID(id), ErrInvalidRepoID)
		})
	}
}
