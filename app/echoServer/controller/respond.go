// Package controller holds what every resource controller shares: turning a
// service error into a status code and a JSON body.
package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"boardcamp/util/apperr"

	"github.com/labstack/echo/v4"
)

// Status maps an error kind to its HTTP status.
func Status(err error) int {
	switch apperr.Code(err) {
	case apperr.ErrValidation, apperr.ErrReference, apperr.ErrOutOfStock, apperr.ErrAlreadyClosed:
		return http.StatusBadRequest
	case apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes the error response. Internal failures are logged with the
// request id and rendered without detail.
func Fail(c echo.Context, log *slog.Logger, op string, err error) error {
	st := Status(err)
	if st == http.StatusInternalServerError {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		log.Error(op+" failed",
			"err", err,
			"req_id", rid,
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return c.JSON(st, echo.Map{"message": "internal error"})
	}

	body := echo.Map{"message": apperr.Message(err)}
	if f := apperr.Fields(err); len(f) > 0 {
		body["errors"] = f
	}
	if st == http.StatusBadRequest {
		log.Warn("bad input", "op", op, "path", c.Path(), "err", err)
	}
	return c.JSON(st, body)
}

// BadJSON is the response for a body that could not be bound.
func BadJSON(c echo.Context, log *slog.Logger, err error) error {
	log.Warn("bind failed", "path", c.Path(), "err", err)
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
}

// ParamID reads a positive int64 path parameter.
func ParamID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func InvalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
}
