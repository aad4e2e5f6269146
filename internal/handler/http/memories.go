package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
)

func (h *Handler) createMemory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	keyAuth, ok := utils.GetKeyAuthFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createMemory").Msg("no key auth in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createMemory").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	memory, err := h.services.MemoryService.Create(ctx, keyAuth.User, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMemory").Msg("memory creation failed")
		http.Error(w, "memory creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, memory, http.StatusCreated)
}

func (h *Handler) searchMemories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	keyAuth, ok := utils.GetKeyAuthFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.searchMemories").Msg("no key auth in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("query")

	var limit int
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			log.Err(err).Str("func", "*Handler.searchMemories").Str("limit", rawLimit).Msg("invalid limit parameter")
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	memories, err := h.services.MemoryService.Search(ctx, keyAuth.UserID, query, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchMemories").Msg("memory search failed")
		http.Error(w, "memory search failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, memories, http.StatusOK)
}
