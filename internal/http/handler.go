package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taxi-service/internal/service"
	"taxi-service/internal/validation"
)

type Handler struct {
	manufacturerService *service.ManufacturerService
	driverService       *service.DriverService
	carService          *service.CarService
	authService         *service.AuthService
	indexService        *service.IndexService
	staffMiddleware     gin.HandlerFunc
	secureCookies       bool
	log                 zerolog.Logger
}

type Services struct {
	Manufacturers *service.ManufacturerService
	Drivers       *service.DriverService
	Cars          *service.CarService
	Auth          *service.AuthService
	Index         *service.IndexService
}

func NewHandler(services Services, staffMiddleware gin.HandlerFunc, secureCookies bool, log zerolog.Logger) *Handler {
	return &Handler{
		manufacturerService: services.Manufacturers,
		driverService:       services.Drivers,
		carService:          services.Cars,
		authService:         services.Auth,
		indexService:        services.Index,
		staffMiddleware:     staffMiddleware,
		secureCookies:       secureCookies,
		log:                 log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
	}

	protected := r.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/", h.index)

	manufacturers := protected.Group("/manufacturers")
	{
		manufacturers.GET("", h.listManufacturers)
		manufacturers.POST("", h.createManufacturer)
		manufacturers.GET("/:id", h.getManufacturer)
		manufacturers.PUT("/:id", h.updateManufacturer)
		manufacturers.DELETE("/:id", h.deleteManufacturer)
	}

	cars := protected.Group("/cars")
	{
		cars.GET("", h.listCars)
		cars.POST("", h.createCar)
		cars.GET("/:id", h.getCar)
		cars.PUT("/:id", h.updateCar)
		cars.DELETE("/:id", h.deleteCar)
		cars.POST("/:id/toggle-assign", h.toggleAssign)
	}

	drivers := protected.Group("/drivers")
	{
		drivers.GET("", h.listDrivers)
		drivers.POST("", h.createDriver)
		drivers.GET("/:id", h.getDriver)
		drivers.PUT("/:id/license", h.updateDriverLicense)
		drivers.DELETE("/:id", h.deleteDriver)
	}

	// admin site: driver list and detail including the license number
	admin := protected.Group("/admin")
	admin.Use(h.staffMiddleware)
	{
		admin.GET("/drivers", h.adminListDrivers)
		admin.GET("/drivers/:id", h.adminGetDriver)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var fieldErrs *validation.Errors
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, validationResponse(fieldErrs.Fields))
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, validationResponse(map[string][]string{fieldErr.Field: {fieldErr.Message}}))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func validationResponse(fields map[string][]string) gin.H {
	return gin.H{
		"error":  validation.ErrInvalid.Error(),
		"fields": fields,
	}
}

// listInput reads the search field and page number of a list page.
// A malformed page number is reported as not found.
func listInput(c *gin.Context, searchField string) (service.ListInput, bool) {
	input := service.ListInput{Query: c.Query(searchField)}

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusNotFound, errorResponse("invalid page"))
			return service.ListInput{}, false
		}
		input.Page = page
	}

	return input, true
}

// listResponse renders a list page with the same context keys for every entity.
func listResponse(listKey, searchField, query string, items interface{}, page interface{}, numPages int) gin.H {
	return successResponse(gin.H{
		listKey:        items,
		"search_form":  gin.H{searchField: strings.TrimSpace(query)},
		"page":         page,
		"is_paginated": numPages > 1,
	})
}
