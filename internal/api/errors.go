package api

import (
	"errors"
	"net/http"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Handlers
// never pick status codes themselves; this is the single place where the
// error taxonomy meets HTTP.
func MapErrorToStatusCode(err error) int {
	var (
		notFound     *service.NotFoundError
		exists       *service.AlreadyExistsError
		insufficient *service.InsufficientFundsError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &exists):
		return http.StatusConflict
	case errors.As(err, &insufficient):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return http.StatusBadRequest
	case errors.Is(err, idgen.ErrExhausted):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes the error envelope for a service failure.
// Error messages are part of the API contract, so the message goes out
// verbatim.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error(), err)
}
