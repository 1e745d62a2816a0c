package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/infrastructure/auth"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/constants"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

// TokenVerifier is satisfied by auth.JWTService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth verifies the bearer token and puts the caller's id, role and wing on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, _ := claims.UserID()
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, authorization.ParseUserRole(string(claims.Role)))
		if claims.WingID != nil {
			c.Set(constants.ContextKeyWingID, *claims.WingID)
		}

		c.Next()
	}
}

// Identity reads what RequireAuth stored. ok is false on unauthenticated routes.
func Identity(c *gin.Context) (userID uint, role authorization.UserRole, ok bool) {
	id, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok = id.(uint)
	if !ok {
		return 0, "", false
	}
	role = authorization.RoleStaff
	if r, exists := c.Get(constants.ContextKeyUserRole); exists {
		if parsed, isRole := r.(authorization.UserRole); isRole {
			role = parsed
		}
	}
	return userID, role, true
}

// WingID returns the caller's wing when the token carried one.
func WingID(c *gin.Context) *uint {
	v, exists := c.Get(constants.ContextKeyWingID)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
