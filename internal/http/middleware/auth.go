package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxi-service/internal/auth"
	"taxi-service/internal/model"
	"taxi-service/internal/repository"
)

const (
	claimsContextKey    = "tokenClaims"
	principalContextKey = "principal"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"

	// AccessTokenCookie carries the token for browser clients.
	AccessTokenCookie = "access_token"
)

// DriverLookup loads the driver a token was issued to.
type DriverLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
}

// Auth authenticates the request from a bearer token or the access token
// cookie and reloads the driver it names, so deleted or deactivated
// accounts lose access at once and staff status follows the stored record.
// Unauthenticated browser requests are redirected to loginURL with a next
// parameter; API clients get 401.
func Auth(parser *auth.Parser, drivers DriverLookup, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := extractToken(c)
		if !ok {
			unauthenticated(c, loginURL, "authorization header missing")
			return
		}

		claims, err := parser.Parse(raw)
		if err != nil {
			unauthenticated(c, loginURL, "invalid token")
			return
		}

		driver, err := drivers.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unauthenticated(c, loginURL, "account not found")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !driver.IsActive {
			unauthenticated(c, loginURL, "account disabled")
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set(principalContextKey, model.Principal{
			DriverID: driver.ID,
			Username: driver.Username,
			IsStaff:  driver.IsStaff,
		})
		c.Next()
	}
}

// StaffOnly lets through principals with staff access.
func StaffOnly(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			unauthenticated(c, loginURL, "missing principal")
			return
		}
		if !principal.IsAdmin() {
			if wantsHTML(c) {
				redirectToLogin(c, loginURL)
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return model.Principal{}, false
	}

	principal, ok := value.(model.Principal)
	if !ok {
		return model.Principal{}, false
	}

	return principal, true
}

func extractToken(c *gin.Context) (string, bool) {
	if rawHeader := c.GetHeader(authorizationHeader); rawHeader != "" {
		parts := strings.SplitN(rawHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) {
			return "", false
		}
		token := strings.TrimSpace(parts[1])
		return token, token != ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

func unauthenticated(c *gin.Context, loginURL, message string) {
	if wantsHTML(c) {
		redirectToLogin(c, loginURL)
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

func redirectToLogin(c *gin.Context, loginURL string) {
	target := loginURL + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
