package utils

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/domain"
)

const internalErrorDetail = "Internal server error"

// ErrorTitles are the endpoint specific messages shown for each error kind.
type ErrorTitles struct {
	NotFound         string
	Forbidden        string
	InvalidState     string
	InvalidParameter string
	Validation       string
	Internal         string
}

var defaultTitles = ErrorTitles{
	NotFound:         "Resource not found",
	Forbidden:        "Unauthorized access",
	InvalidState:     "Invalid operation",
	InvalidParameter: "Invalid parameter",
	Validation:       "The given data was invalid.",
	Internal:         "Internal server error",
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithDomainError writes err using the envelope. Errors outside the
// domain taxonomy are logged and hidden behind a generic detail.
func RespondWithDomainError(w http.ResponseWriter, err error, titles ErrorTitles) {
	code := StatusFor(err)

	detail := internalErrorDetail
	var domainErr *domain.Error
	if code != http.StatusInternalServerError && errors.As(err, &domainErr) {
		detail = domainErr.Detail
	}
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}

	RespondWithFailure(w, code, titleFor(err, titles), detail)
}

func titleFor(err error, titles ErrorTitles) string {
	pick := func(title, fallback string) string {
		if title != "" {
			return title
		}
		return fallback
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return pick(titles.NotFound, defaultTitles.NotFound)
	case errors.Is(err, domain.ErrForbidden):
		return pick(titles.Forbidden, defaultTitles.Forbidden)
	case errors.Is(err, domain.ErrInvalidState):
		return pick(titles.InvalidState, defaultTitles.InvalidState)
	case errors.Is(err, domain.ErrInvalidParameter):
		return pick(titles.InvalidParameter, defaultTitles.InvalidParameter)
	case errors.Is(err, domain.ErrValidation):
		return pick(titles.Validation, defaultTitles.Validation)
	default:
		return pick(titles.Internal, defaultTitles.Internal)
	}
}
