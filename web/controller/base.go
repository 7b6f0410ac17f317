// Package controller provides the HTTP handlers of the bookshop API.
package controller

import (
	"bookshop/web/middleware"
	"bookshop/web/service"
	"bookshop/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides identity resolution shared by all controllers.
type BaseController struct{}

// identity resolves the caller's identity for this request. The cookie
// session is consulted first, then the bearer-token claims attached by the
// token gate. Both channels yield the same Identity value; handlers never
// depend on which one authenticated the caller.
func (a *BaseController) identity(c *gin.Context) *service.Identity {
	if login := session.GetLoginUser(c); login != nil {
		return &service.Identity{Username: login.Username}
	}
	if username := c.GetString(middleware.ContextUsername); username != "" {
		return &service.Identity{Username: username}
	}
	return nil
}
