package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/pkg/apperror"
	"devconnect/pkg/auth"
	"devconnect/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
)

// AuthMiddleware resolves the bearer token to a user id. Missing,
// malformed, expired and denylisted tokens all map to 401.
func AuthMiddleware(jwtSvc *auth.JWTService, denylist auth.Denylist, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		denied, err := denylist.IsDenied(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Error("Denylist check failed", err, zap.String("user_id", claims.UserID.String()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if denied {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)

		c.Next()
	}
}

// ErrorMiddleware renders the first error a handler attached. Expected
// failures keep their message; anything internal is logged with detail
// and answered with a generic envelope.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr, zap.String("path", c.FullPath()))
			c.JSON(status, gin.H{"error": "internal server error"})
			return
		}

		log.Debug("Request rejected", zap.String("path", c.FullPath()), zap.String("reason", appErr.Error()))
		c.JSON(status, appErr.ToJSON())
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}
