// Package middleware provides gin middleware for the bookshop web server.
package middleware

import (
	"net/http"
	"strings"

	"bookshop/web/entity"
	"bookshop/web/service"

	"github.com/gin-gonic/gin"
)

// ContextUsername is the gin context key under which the token gate stores
// the username decoded from a valid bearer token.
const ContextUsername = "tokenUsername"

// TokenGate protects a route group with bearer-token authentication. The
// token is taken from the Authorization header, with or without the "Bearer"
// prefix. A missing token aborts with 401, an invalid or expired one with
// 403; on success the decoded claims are attached to the request context.
func TokenGate() gin.HandlerFunc {
	tokenService := service.TokenService{}

	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Message: "Access denied. No token provided.",
			})
			return
		}

		claims, err := tokenService.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, entity.Msg{
				Message: "Invalid or expired token.",
			})
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
