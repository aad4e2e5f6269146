package sdk

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrQuotaExceeded       = errors.New("monthly memory limit exceeded")
	ErrInternalServerError = errors.New("internal server error")
)
