package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-rental/internal/auth"
	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin deve vir depois de AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsAdmin {
			httperr.Forbidden(c, "admin_only", httperr.Message("admin_only"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom monta o Actor da requisição autenticada.
func ActorFrom(c *gin.Context) booking.Actor {
	id, _ := c.Get(ContextUserID)
	role, _ := c.Get(ContextUserRole)

	uid, _ := id.(uint)
	r, _ := role.(string)

	return booking.Actor{ID: uid, IsAdmin: r == models.RoleAdmin}
}
