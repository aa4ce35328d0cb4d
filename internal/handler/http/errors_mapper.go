package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/comfy-hf-uploader/internal/adapter"
	"github.com/MKhiriev/comfy-hf-uploader/internal/service"
)

// errorStatuses is checked in order; Hub auth errors come before the
// generic remote failures that wrap them.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrEmptyToken, http.StatusBadRequest},
	{service.ErrInvalidRepoID, http.StatusBadRequest},
	{service.ErrInvalidModelKind, http.StatusBadRequest},
	{service.ErrSourceNotFound, http.StatusNotFound},

	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrForbidden, http.StatusForbidden},
	{adapter.ErrRateLimited, http.StatusTooManyRequests},
	{adapter.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},

	{service.ErrCreateRepo, http.StatusBadGateway},
	{service.ErrUpload, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
