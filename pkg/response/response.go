// Package response 服务端渲染的统一错误页出口
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not Found",
		"Code":    http.StatusNotFound,
		"Message": "Page not found.",
	})
	c.Abort()
}

// Forbidden 不透露任何细节
func Forbidden(c *gin.Context) {
	c.HTML(http.StatusForbidden, "error.html", gin.H{
		"Title":   "Forbidden",
		"Code":    http.StatusForbidden,
		"Message": "Access denied.",
	})
	c.Abort()
}

func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Server Error",
		"Code":    http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again later.",
	})
	c.Abort()
}
