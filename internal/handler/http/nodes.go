package http

import (
	"net/http"

	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

// getNodes returns the node registry keyed by node name, the shape the host
// expects from its object info endpoint.
func (h *Handler) getNodes(w http.ResponseWriter, r *http.Request) {
	node := h.services.AppInfoService.GetNodeInfo(r.Context())

	if _, err := utils.WriteJSON(w, map[string]models.NodeInfo{node.Name: node}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("write nodes response")
	}
}
