package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-service/internal/service"
)

type manufacturerRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (h *Handler) listManufacturers(c *gin.Context) {
	input, ok := listInput(c, "name")
	if !ok {
		return
	}

	result, err := h.manufacturerService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse("manufacturer_list", "name", input.Query, result.Items, result.Page, result.Page.NumPages))
}

func (h *Handler) getManufacturer(c *gin.Context) {
	manufacturer, err := h.manufacturerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(manufacturer))
}

func (h *Handler) createManufacturer(c *gin.Context) {
	var req manufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	manufacturer, err := h.manufacturerService.Create(c.Request.Context(), service.ManufacturerInput{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(manufacturer))
}

func (h *Handler) updateManufacturer(c *gin.Context) {
	var req manufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	manufacturer, err := h.manufacturerService.Update(c.Request.Context(), c.Param("id"), service.ManufacturerInput{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(manufacturer))
}

func (h *Handler) deleteManufacturer(c *gin.Context) {
	if err := h.manufacturerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
