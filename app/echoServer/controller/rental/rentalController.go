package rental

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	rs "boardcamp/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// Create
// @Summary      Open rental
// @Description  Reserves one unit of the game and freezes the price
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  model.OpenRentalReq  true  "Rental payload"
// @Success      201  {object}  model.Rental
// @Failure      400  {object}  map[string]any "invalid payload, unknown customer/game or no stock"
// @Router       /rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.OpenRentalReq
	if err := c.Bind(&req); err != nil {
		return controller.BadJSON(c, h.Log, err)
	}
	if err := c.Validate(&req); err != nil {
		return controller.Fail(c, h.Log, "rental create", err)
	}

	out, err := h.Svc.Open(c.Request().Context(), req)
	if err != nil {
		return controller.Fail(c, h.Log, "rental create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Return
// @Summary      Return rental
// @Tags         rentals
// @Produce      json
// @Param        id  path  int  true  "Rental id"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any "already returned"
// @Failure      404  {object}  map[string]any
// @Router       /rentals/{id}/return [post]
func (h *Controller) Return(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	out, err := h.Svc.Close(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "rental return", err)
	}
	return c.JSON(http.StatusOK, out)
}

// List
// @Summary      List rentals
// @Description  customerId takes precedence when both filters are given
// @Tags         rentals
// @Produce      json
// @Param        customerId  query  int  false  "Customer id"
// @Param        gameId      query  int  false  "Game id"
// @Success      200  {array}  model.RentalView
// @Router       /rentals [get]
func (h *Controller) List(c echo.Context) error {
	f, ok := listQuery(c.QueryParam("customerId"), c.QueryParam("gameId"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid filter"})
	}
	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return controller.Fail(c, h.Log, "rental list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Delete
// @Summary      Cancel rental
// @Description  Only rentals that were never returned can be deleted
// @Tags         rentals
// @Param        id  path  int  true  "Rental id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "already returned"
// @Router       /rentals/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "rental delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
