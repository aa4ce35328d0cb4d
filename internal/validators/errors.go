package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyToken       = errors.New("token is required")
	ErrInvalidRepoID    = errors.New("invalid repo id")
	ErrInvalidModelKind = errors.New("invalid model type")
	ErrInvalidPreview   = errors.New("invalid preview image")
)
