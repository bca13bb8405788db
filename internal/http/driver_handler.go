package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-service/internal/model"
	"taxi-service/internal/service"
)

type createDriverRequest struct {
	Username      string `json:"username"`
	Password1     string `json:"password1"`
	Password2     string `json:"password2"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"license_number"`
}

type licenseRequest struct {
	LicenseNumber string `json:"license_number"`
}

func (h *Handler) listDrivers(c *gin.Context) {
	input, ok := listInput(c, "username")
	if !ok {
		return
	}

	result, err := h.driverService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse("driver_list", "username", input.Query, result.Items, result.Page, result.Page.NumPages))
}

func (h *Handler) getDriver(c *gin.Context) {
	driver, err := h.driverService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) createDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), service.CreateDriverInput{
		Username:             req.Username,
		Password:             req.Password1,
		PasswordConfirmation: req.Password2,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		LicenseNumber:        req.LicenseNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) updateDriverLicense(c *gin.Context) {
	var req licenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.driverService.UpdateLicense(c.Request.Context(), c.Param("id"), req.LicenseNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	if err := h.driverService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// adminDriverRow is one row of the admin driver list.
type adminDriverRow struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	IsStaff       bool   `json:"is_staff"`
	LicenseNumber string `json:"license_number"`
}

func newAdminDriverRow(d model.Driver) adminDriverRow {
	return adminDriverRow{
		ID:            d.ID.String(),
		Username:      d.Username,
		Email:         d.Email,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		IsStaff:       d.IsStaff,
		LicenseNumber: d.LicenseNumber,
	}
}

func (h *Handler) adminListDrivers(c *gin.Context) {
	input, ok := listInput(c, "q")
	if !ok {
		return
	}

	result, err := h.driverService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rows := make([]adminDriverRow, 0, len(result.Items))
	for _, d := range result.Items {
		rows = append(rows, newAdminDriverRow(d))
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"list_display": []string{"username", "email", "first_name", "last_name", "is_staff", "license_number"},
		"results":      rows,
		"page":         result.Page,
	}))
}

func (h *Handler) adminGetDriver(c *gin.Context) {
	driver, err := h.driverService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"driver": driver,
		"fieldsets": []gin.H{
			{"name": nil, "fields": []string{"username", "password"}},
			{"name": "Personal info", "fields": []string{"first_name", "last_name", "email"}},
			{"name": "Additional info", "fields": []string{"license_number"}},
		},
	}))
}
