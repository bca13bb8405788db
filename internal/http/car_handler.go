package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-service/internal/http/middleware"
	"taxi-service/internal/service"
)

type carRequest struct {
	Model          string   `json:"model"`
	ManufacturerID string   `json:"manufacturer_id"`
	DriverIDs      []string `json:"driver_ids"`
}

func (r carRequest) input() service.CarInput {
	return service.CarInput{
		Model:          r.Model,
		ManufacturerID: r.ManufacturerID,
		DriverIDs:      r.DriverIDs,
	}
}

func (h *Handler) listCars(c *gin.Context) {
	input, ok := listInput(c, "model")
	if !ok {
		return
	}

	result, err := h.carService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse("car_list", "model", input.Query, result.Items, result.Page, result.Page.NumPages))
}

func (h *Handler) getCar(c *gin.Context) {
	car, err := h.carService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(car))
}

func (h *Handler) createCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	car, err := h.carService.Create(c.Request.Context(), req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(car))
}

func (h *Handler) updateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	car, err := h.carService.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(car))
}

func (h *Handler) deleteCar(c *gin.Context) {
	if err := h.carService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleAssign(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	car, assigned, err := h.carService.ToggleAssign(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"car":      car,
		"assigned": assigned,
	}))
}
