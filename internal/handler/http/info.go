package http

import (
	"net/http"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
)

func (h *Handler) serviceInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ServiceInfo{
		Name:     "PUO Memo Platform API",
		Version:  h.version,
		Status:   "operational",
		Features: []string{"memory-storage", "search", "api-keys"},
		Signup:   "/auth/register",
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}
