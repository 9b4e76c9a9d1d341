package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/webkontor/contactbook/internal/logger"
	"gitlab.com/webkontor/contactbook/internal/store"
	"gitlab.com/webkontor/contactbook/internal/token"
	"go.uber.org/zap"
)

// loginRequest is the payload of a sign-in attempt.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login checks the submitted credentials against the stored users and, when
// they match, responds with a bearer token and the signed-in user. Unknown
// addresses and wrong passwords are answered alike so that the response does
// not reveal which of the two was wrong.
//
// Example REST API call:
//
//	> curl http://localhost:8080/login --request "POST" --header "Content-Type: application/json" --data '{"email": "jane@example.com", "password": "secret"}'
func login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if request.Email == "" || request.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	user, err := store.GetUserByEmail(request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		logger.L.Error("user lookup failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	if !user.ComparePassword(request.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	raw, err := token.Generate(user.Id, user.Role)
	if err != nil {
		logger.L.Error("issuing token failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"token": raw, "user": user})
}
