package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/comfy-hf-uploader/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldToken targets the Hub access token.
	FieldToken = "hf_token"

	// FieldRepoID targets the destination repository id.
	FieldRepoID = "repo_id"

	// FieldModelKind targets the model layout ("ckpt" or "diffusers").
	FieldModelKind = "model_type"

	// FieldPreview targets the optional preview image batch.
	FieldPreview = "images"
)

// maxRepoNameLength is the longest repository name the Hub accepts.
const maxRepoNameLength = 96

// repoIDPattern accepts "name" or "owner/name" where both parts consist of
// letters, digits, '_', '-' and '.', and start and end with a word character.
var repoIDPattern = regexp.MustCompile(`^(\b[\w\-.]+\b/)?\b[\w\-.]{1,96}\b$`)

// UploadRequestValidator implements the Validator interface for upload node
// inputs. It accepts models.UploadRequest (value or pointer) and, for
// standalone repo id checks, a plain string.
type UploadRequestValidator struct {
}

// NewUploadRequestValidator constructs a new UploadRequestValidator and
// returns it as the Validator interface.
func NewUploadRequestValidator() Validator {
	return &UploadRequestValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.UploadRequest / *models.UploadRequest
//   - string, validated as a repo id (fields are ignored)
//
// When no fields are given, token, repo id, model kind and preview are
// validated in that order. Returns the first error encountered.
func (v *UploadRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)
	case string:
		return ValidateRepoID(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadRequestValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldRepoID, FieldModelKind, FieldPreview}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if req.Token == "" {
				return ErrEmptyToken
			}
		case FieldRepoID:
			if err := ValidateRepoID(req.RepoID); err != nil {
				return err
			}
		case FieldModelKind:
			if _, err := models.ParseModelKind(string(req.Kind)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidModelKind, err)
			}
		case FieldPreview:
			if req.Preview == nil {
				continue
			}
			if err := req.Preview.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPreview, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateRepoID checks repoID against the Hub naming rules: an optional
// single "owner/" prefix, allowed characters [A-Za-z0-9_.-], a name of at
// most 96 characters, no "--" or "..", no leading or trailing '-' or '.',
// and no ".git" suffix. Errors wrap ErrInvalidRepoID.
func ValidateRepoID(repoID string) error {
	switch {
	case repoID == "":
		return fmt.Errorf("%w: repo id is empty", ErrInvalidRepoID)
	case strings.Count(repoID, "/") > 1:
		return fmt.Errorf("%w: %q must be in the form 'name' or 'owner/name'", ErrInvalidRepoID, repoID)
	case len(repoID[strings.LastIndex(repoID, "/")+1:]) > maxRepoNameLength:
		return fmt.Errorf("%w: %q name is longer than %d characters", ErrInvalidRepoID, repoID, maxRepoNameLength)
	case !repoIDPattern.MatchString(repoID):
		return fmt.Errorf("%w: %q may only contain letters, digits, '-', '_' and '.', and cannot start or end with '-' or '.'", ErrInvalidRepoID, repoID)
	case strings.Contains(repoID, "--") || strings.Contains(repoID, ".."):
		return fmt.Errorf("%w: %q cannot contain '--' or '..'", ErrInvalidRepoID, repoID)
	case strings.HasSuffix(repoID, ".git"):
		return fmt.Errorf("%w: %q cannot end with '.git'", ErrInvalidRepoID, repoID)
	}
	return nil
}
