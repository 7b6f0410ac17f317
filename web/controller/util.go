package controller

import (
	"net"
	"net/http"
	"strings"

	"bookshop/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a status/error response with the uniform message envelope.
func jsonMsg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{Message: msg})
}

// prettyObj sends a success payload pretty-printed with 2-space indentation.
func prettyObj(c *gin.Context, obj any) {
	c.IndentedJSON(http.StatusOK, obj)
}
