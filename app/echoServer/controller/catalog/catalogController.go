package catalog

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	catalogsvc "boardcamp/service/catalog"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// CreateCategory
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateCategoryReq  true  "Category payload"
// @Success      201  {object}  model.Category
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "name already taken"
// @Router       /categories [post]
func (h *Controller) CreateCategory(c echo.Context) error {
	var req model.CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return controller.BadJSON(c, h.Log, err)
	}
	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return controller.Fail(c, h.Log, "category create", err)
	}

	cat, err := h.Svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return controller.Fail(c, h.Log, "category create", err)
	}
	return c.JSON(http.StatusCreated, cat)
}

// GET /categories
func (h *Controller) ListCategories(c echo.Context) error {
	rows, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		return controller.Fail(c, h.Log, "category list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateGame
// @Summary      Create game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateGameReq  true  "Game payload"
// @Success      201  {object}  model.Game
// @Failure      400  {object}  map[string]any "invalid payload or unknown category"
// @Failure      409  {object}  map[string]any "name already taken"
// @Router       /games [post]
func (h *Controller) CreateGame(c echo.Context) error {
	var req model.CreateGameReq
	if err := c.Bind(&req); err != nil {
		return controller.BadJSON(c, h.Log, err)
	}
	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return controller.Fail(c, h.Log, "game create", err)
	}

	g, err := h.Svc.CreateGame(c.Request().Context(), req)
	if err != nil {
		return controller.Fail(c, h.Log, "game create", err)
	}
	return c.JSON(http.StatusCreated, g)
}

// GET /games?name=
func (h *Controller) ListGames(c echo.Context) error {
	rows, err := h.Svc.ListGames(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return controller.Fail(c, h.Log, "game list", err)
	}
	return c.JSON(http.StatusOK, rows)
}
