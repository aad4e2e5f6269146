package http

import (
	"encoding/json"
	"net/http"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
)

func (h *Handler) createAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createAPIKey").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createAPIKey").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.APIKeyService.Create(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAPIKey").Msg("api key creation failed")
		http.Error(w, "api key creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAPIKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listAPIKeys").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	keys, err := h.services.APIKeyService.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAPIKeys").Msg("api key listing failed")
		http.Error(w, "api key listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}
