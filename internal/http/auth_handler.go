package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taxi-service/internal/http/middleware"
)

const visitsCookie = "num_visits"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, session.AccessToken, maxAge, "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, successResponse(session))
}

func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.Status(http.StatusNoContent)
}

// index reports entity counts and how many times this browser visited it.
func (h *Handler) index(c *gin.Context) {
	stats, err := h.indexService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	visits := 0
	if raw, err := c.Cookie(visitsCookie); err == nil {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			visits = n
		}
	}
	visits++
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(visitsCookie, strconv.Itoa(visits), 0, "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, successResponse(gin.H{
		"num_drivers":       stats.NumDrivers,
		"num_cars":          stats.NumCars,
		"num_manufacturers": stats.NumManufacturers,
		"num_visits":        visits,
	}))
}
