package http

import (
	"encoding/json"
	"net/http"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, defaultKey, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("user registration failed")
		http.Error(w, "user registration failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User registered successfully",
		User:    registeredUser,
		APIKey:  defaultKey,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("user login failed")
		http.Error(w, "invalid email/password", statusFromError(err))
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var expiresIn int64
	if token.Token != nil {
		if expiry, expErr := token.Claims.GetExpirationTime(); expErr == nil && expiry != nil {
			if issuedAt, iatErr := token.Claims.GetIssuedAt(); iatErr == nil && issuedAt != nil {
				expiresIn = int64(expiry.Sub(issuedAt.Time).Seconds())
			}
		}
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        foundUser,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.me").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.UserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.me").Msg("user lookup failed")
		http.Error(w, "user lookup failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}
