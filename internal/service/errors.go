package service

import "errors"

// Precondition failures. Nothing has been sent to the Hub when one of these
// is returned.
var (
	ErrEmptyToken       = errors.New("hub token is empty")
	ErrInvalidRepoID    = errors.New("invalid repo id")
	ErrInvalidModelKind = errors.New("invalid model type")
	ErrSourceNotFound   = errors.New("model path does not exist")
)

// Remote failures. They wrap the adapter error.
var (
	ErrCreateRepo = errors.New("error creating repo")
	ErrUpload     = errors.New("error uploading model")
)

// IsPrecondition reports whether err was caused by invalid input rather
// than by the Hub.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrEmptyToken) ||
		errors.Is(err, ErrInvalidRepoID) ||
		errors.Is(err, ErrInvalidModelKind) ||
		errors.Is(err, ErrSourceNotFound)
}
