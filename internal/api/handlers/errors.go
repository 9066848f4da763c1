package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ezycar/booking-api/internal/api/httpx"
	"github.com/ezycar/booking-api/internal/api/validate"
	"github.com/ezycar/booking-api/internal/models"
)

// writeDomainError maps the error taxonomy onto HTTP statuses. Forbidden
// deliberately shares 401 with unauthenticated requests.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve validate.Errs
	switch {
	case errors.As(err, &ve):
		httpx.Fail(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrQuotaExceeded):
		httpx.Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden):
		httpx.Fail(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("request failed", "err", err)
		httpx.Fail(w, http.StatusInternalServerError, "Server Error")
	}
}
