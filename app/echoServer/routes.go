package echoServer

import (
	"context"
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller/catalog"
	"boardcamp/app/echoServer/controller/customer"
	"boardcamp/app/echoServer/controller/rental"
	"boardcamp/app/echoServer/validation"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type C struct {
	Catalog  *catalog.Controller
	Customer *customer.Controller
	Rental   *rental.Controller

	// Ping checks the database for /health; nil skips the check.
	Ping func(ctx context.Context) error
}

func Register(e *echo.Echo, c C) {
	e.GET("/status", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})
	e.GET("/health", func(ctx echo.Context) error {
		if c.Ping != nil {
			if err := c.Ping(ctx.Request().Context()); err != nil {
				return ctx.JSON(http.StatusServiceUnavailable, echo.Map{
					"status":  "degraded",
					"message": "database unreachable",
				})
			}
		}
		return ctx.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Catalog
	e.POST("/categories", c.Catalog.CreateCategory)
	e.GET("/categories", c.Catalog.ListCategories)
	e.POST("/games", c.Catalog.CreateGame)
	e.GET("/games", c.Catalog.ListGames)

	// Customers
	e.POST("/customers", c.Customer.Create)
	e.GET("/customers", c.Customer.List)
	e.GET("/customers/:id", c.Customer.Detail)
	e.PUT("/customers/:id", c.Customer.Update)

	// Rentals
	e.POST("/rentals", c.Rental.Create)
	e.GET("/rentals", c.Rental.List)
	e.POST("/rentals/:id/return", c.Rental.Return)
	e.DELETE("/rentals/:id", c.Rental.Delete)
}

// New builds the echo instance with middlewares, validator and routes.
func New(c C, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	RegisterMiddlewares(e, log)
	Register(e, c)
	return e
}
