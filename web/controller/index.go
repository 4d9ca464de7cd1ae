package controller

import (
	"net/http"

	"userdash/logger"
	"userdash/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles the landing page and logout.
type IndexController struct {
	BaseController
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", "Home", nil)
}

// logout clears the session and returns the client to the login page.
func (a *IndexController) logout(c *gin.Context) {
	if username := session.GetLoginUser(c); username != "" {
		logger.Infof("%s logged out", username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
