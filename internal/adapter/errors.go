package adapter

import "errors"

// Errors mapped from Hub HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("hub unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("hub internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("hub unavailable")
)

// Errors raised while preparing or transferring a commit.
var (
	// ErrEmptyFolder is returned when a folder upload finds no files to send.
	ErrEmptyFolder = errors.New("nothing to upload")
	// ErrLFSTransfer is returned when the LFS batch API rejects an object or
	// the storage backend refuses the upload.
	ErrLFSTransfer = errors.New("lfs transfer failed")
	// ErrMultipartNotSupported is returned when the Hub asks for a multipart
	// transfer, which this client does not implement.
	ErrMultipartNotSupported = errors.New("multipart lfs transfer is not supported")
	// ErrInvalidRepoID is returned for repo ids that cannot be split into
	// owner and name.
	ErrInvalidRepoID = errors.New("invalid repo id")
)
