package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handler returns the centralized echo error handler. Every error raised by a
// route lands here and is serialized into the uniform Error shape.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := From(err)
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}

		if jsonErr := c.JSON(apiErr.Status, apiErr); jsonErr != nil {
			logger.Error().Err(jsonErr).Msg("failed to write error response")
		}
	}
}

// From maps any error to an API Error. Unknown errors become a 500 without
// leaking internals to the caller.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return New(echoErr.Code, http.StatusText(echoErr.Code), fmt.Sprintf("%v", echoErr.Message))
	}

	return New(http.StatusInternalServerError, "Internal server error", "Something went wrong.")
}
