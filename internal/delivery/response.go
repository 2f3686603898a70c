package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"
)

// statusForError maps domain errors to HTTP status codes. Failure
// responses carry no body; diagnostics belong to the log.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrProductNameRequired),
		errors.Is(err, domain.ErrInvalidInvestmentParameters):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
