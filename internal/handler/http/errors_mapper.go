package http

import (
	"errors"
	"net/http"

	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrAccountDeactivated:   http.StatusUnauthorized,
	service.ErrTokenInvalid:         http.StatusUnauthorized,
	service.ErrAPIKeyInvalid:        http.StatusUnauthorized,
	service.ErrMonthlyLimitExceeded: http.StatusTooManyRequests,

	validators.ErrEmptyEmail:         http.StatusBadRequest,
	validators.ErrInvalidEmail:       http.StatusBadRequest,
	validators.ErrEmptyPassword:      http.StatusBadRequest,
	validators.ErrPasswordTooShort:   http.StatusBadRequest,
	validators.ErrPasswordNoUpper:    http.StatusBadRequest,
	validators.ErrPasswordNoLower:    http.StatusBadRequest,
	validators.ErrPasswordNoDigit:    http.StatusBadRequest,
	validators.ErrFullNameTooLong:    http.StatusBadRequest,
	validators.ErrKeyNameTooLong:     http.StatusBadRequest,
	validators.ErrNegativeKeyExpiry:  http.StatusBadRequest,
	validators.ErrInvalidRateLimit:   http.StatusBadRequest,
	validators.ErrEmptyMemoryContent: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAPIKeyNotFound:     http.StatusNotFound,
	store.ErrMemoryNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
