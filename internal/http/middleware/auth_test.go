package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi-service/internal/auth"
	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/repository/memory"
)

type failingLookup struct{}

func (failingLookup) GetByID(context.Context, uuid.UUID) (*model.Driver, error) {
	return nil, errors.New("connection refused")
}

func newEngine(parser *auth.Parser, drivers DriverLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(Auth(parser, drivers, "/auth/login"))
	protected.GET("/drivers", func(c *gin.Context) {
		principal, _ := MustPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	protected.GET("/admin/drivers", StaffOnly("/auth/login"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

// issue stores a driver and returns a token for it.
func issue(t *testing.T, drivers repository.DriverStore, username string, staff bool) string {
	t.Helper()
	driver := &model.Driver{Username: username, IsStaff: staff, IsActive: true}
	require.NoError(t, drivers.Create(context.Background(), driver))

	token, _, err := auth.NewIssuer("secret", time.Hour).Issue(driver)
	require.NoError(t, err)
	return token
}

func TestAuth(t *testing.T) {
	drivers := memory.New().Drivers()
	r := newEngine(auth.NewParser("secret"), drivers)
	token := issue(t, drivers, "driver", false)

	t.Run("browser is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers?username=user2", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login?next=%2Fdrivers%3Fusername%3Duser2", w.Header().Get("Location"))
	})

	t.Run("api client gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"authorization header missing"}`, w.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"driver"}`, w.Body.String())
	})

	t.Run("unknown driver", func(t *testing.T) {
		stale, _, err := auth.NewIssuer("secret", time.Hour).Issue(&model.Driver{ID: uuid.New(), Username: "gone"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.Header.Set("Authorization", "Bearer "+stale)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"account not found"}`, w.Body.String())
	})

	t.Run("lookup failure", func(t *testing.T) {
		failing := newEngine(auth.NewParser("secret"), failingLookup{})

		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		failing.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStaffOnly(t *testing.T) {
	drivers := memory.New().Drivers()
	r := newEngine(auth.NewParser("secret"), drivers)

	req := httptest.NewRequest(http.MethodGet, "/admin/drivers", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, drivers, "driver", false))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/drivers", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, drivers, "admin", true))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
