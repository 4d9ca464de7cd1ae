// Package controller provides the HTTP handlers of userdash: the index and
// auth pages plus the session-gated dashboard.
package controller

import (
	"net/http"

	"userdash/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// checkLogin redirects anonymous clients to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	} else {
		c.Next()
	}
}
