package handler

import (
	"net/http"

	"github.com/ceylontrip/ceylontrip/internal/utils"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(); err != nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
		return
	}
	utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
