package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/comfy-hf-uploader/internal/app"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/status"
	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

type uploadResponse struct {
	models.UploadReport
	Status []status.Line `json:"status"`
}

type uploadErrorResponse struct {
	models.ErrorResponse
	Status []status.Line `json:"status"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, errors.New(app.MsgRequestTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteError(w, errors.New(app.MsgInvalidJSON), http.StatusBadRequest)
		return
	}

	rec := status.NewRecorder(h.reporter)
	ctx := status.WithReporter(r.Context(), rec)

	report, err := h.services.UploadService.Upload(ctx, req)
	if err != nil {
		code := statusFromError(err)
		log.Err(err).Int("status", code).Str("request_id", report.RequestID).Msg("upload failed")

		body := uploadErrorResponse{
			ErrorResponse: models.ErrorResponse{Error: err.Error(), Report: &report},
			Status:        rec.Lines(),
		}
		if _, writeErr := utils.WriteJSON(w, body, code); writeErr != nil {
			log.Err(writeErr).Msg("write upload error response")
		}
		return
	}

	if _, err = utils.WriteJSON(w, uploadResponse{UploadReport: report, Status: rec.Lines()}, http.StatusOK); err != nil {
		log.Err(err).Msg("write upload response")
	}
}
