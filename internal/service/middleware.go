package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/webkontor/contactbook/internal/authz"
	"gitlab.com/webkontor/contactbook/internal/logger"
	"gitlab.com/webkontor/contactbook/internal/model"
	"gitlab.com/webkontor/contactbook/internal/token"
	"go.uber.org/zap"
)

// identityKey is the request context key under which the caller's identity is
// stored.
const identityKey = "identity"

// Identify resolves the caller's identity from the Authorization header and
// stores it on the request context. Requests without a valid bearer token
// proceed with the guest identity; whether that is enough for the requested
// action is decided by the authorization guard, not here.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := model.Guest()
		header := c.GetHeader("Authorization")
		if raw, found := strings.CutPrefix(header, "Bearer "); found {
			if claims, err := token.Parse(raw); err == nil {
				identity = model.Identity{UserID: claims.UserID, Role: claims.Role}
			}
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored on the request context. A
// request that never passed Identify counts as guest.
func CurrentIdentity(c *gin.Context) model.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(model.Identity); ok {
			return identity
		}
	}
	return model.Guest()
}

// Authorize builds a middleware that checks the caller's identity against the
// given action before the handler runs. A denied request is answered with
// UNAUTHORIZED and never reaches the handler, so it cannot cause any change.
func Authorize(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !authz.IsAllowed(action, identity) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "login required"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.L.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("role", CurrentIdentity(c).Role),
			zap.Duration("latency", time.Since(start)))
	}
}
