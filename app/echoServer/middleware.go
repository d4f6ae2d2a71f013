package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// request bodies here are small JSON objects
const maxBody = "64K"

func RegisterMiddlewares(e *echo.Echo, log *slog.Logger) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(maxBody))
	e.Use(AccessLog(log))
}

// AccessLog writes one line per request. Server errors are logged at Error,
// client errors at Warn.
func AccessLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			began := time.Now()
			if err := next(c); err != nil {
				// render now so the logged status is what the client got
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			lvl := slog.LevelInfo
			switch {
			case res.Status >= http.StatusInternalServerError:
				lvl = slog.LevelError
			case res.Status >= http.StatusBadRequest:
				lvl = slog.LevelWarn
			}
			log.LogAttrs(req.Context(), lvl, "http",
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("uri", req.RequestURI),
				slog.Int("status", res.Status),
				slog.Int64("bytes_out", res.Size),
				slog.Int64("latency_ms", time.Since(began).Milliseconds()),
				slog.String("req_id", res.Header().Get(echo.HeaderXRequestID)),
				slog.String("ip", c.RealIP()),
			)
			return nil
		}
	}
}
