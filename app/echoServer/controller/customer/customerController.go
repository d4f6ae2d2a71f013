package customer

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller"
	"boardcamp/model"
	customersvc "boardcamp/service/customer"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	Log *slog.Logger
}

// Create
// @Summary      Register customer
// @Description  cpf must be 11 digits and unique, phone 10 or 11 digits
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CustomerReq  true  "Customer payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cpf already registered"
// @Router       /customers [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CustomerReq
	if err := c.Bind(&req); err != nil {
		return controller.BadJSON(c, h.Log, err)
	}
	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return controller.Fail(c, h.Log, "customer create", err)
	}

	cu, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return controller.Fail(c, h.Log, "customer create", err)
	}
	return c.JSON(http.StatusCreated, cu)
}

// Update
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path  int                true  "Customer id"
// @Param        payload  body  model.CustomerReq  true  "Customer payload"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cpf belongs to another customer"
// @Router       /customers/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	var req model.CustomerReq
	if err := c.Bind(&req); err != nil {
		return controller.BadJSON(c, h.Log, err)
	}
	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return controller.Fail(c, h.Log, "customer update", err)
	}

	cu, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return controller.Fail(c, h.Log, "customer update", err)
	}
	return c.JSON(http.StatusOK, cu)
}

// GET /customers?cpf=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		return controller.Fail(c, h.Log, "customer list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return controller.InvalidID(c)
	}
	cu, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "customer detail", err)
	}
	return c.JSON(http.StatusOK, cu)
}
