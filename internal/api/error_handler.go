package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accounthub/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// status field is the literal string "error", distinct from the HTTP code.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns the single error translator every failure is
// funneled through. Classification order matters: store validation first,
// then uniqueness conflicts, then explicit domain errors, then echo's own
// errors, and finally a generic 500 that logs the real cause without
// leaking it to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Status: "error", Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	var de *domain.DuplicateKeyError
	if errors.As(err, &de) {
		return http.StatusBadRequest, fmt.Sprintf("Duplicate field: %s. Please use another value!", de.Field)
	}

	var ae *domain.APIError
	if errors.As(err, &ae) {
		return ae.Code, ae.Message
	}

	// Echo's own errors (bind failures, 405 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
