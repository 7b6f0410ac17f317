// Package session stores the logged-in customer's state in the cookie session.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// LoginSession is the server-side session payload recorded at login: the
// last issued token and the customer's username.
type LoginSession struct {
	Token    string
	Username string
}

func init() {
	gob.Register(LoginSession{})
}

func SetLoginUser(c *gin.Context, login *LoginSession) error {
	s := sessions.Default(c)
	s.Set(loginUser, login)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *LoginSession {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if login, ok := obj.(LoginSession); ok {
			return &login
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
