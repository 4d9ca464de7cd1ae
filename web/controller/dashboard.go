package controller

import (
	"net/http"

	"userdash/logger"
	"userdash/web/service"
	"userdash/web/session"

	"github.com/gin-gonic/gin"
)

// DashboardController renders the per-user dashboard. Access requires the
// session to be bound to the requested username.
type DashboardController struct {
	BaseController

	userService service.UserService
}

func NewDashboardController(g *gin.RouterGroup) *DashboardController {
	a := &DashboardController{}
	a.initRouter(g)
	return a
}

func (a *DashboardController) initRouter(g *gin.RouterGroup) {
	g.GET("/dashboard/:username", a.checkLogin, a.dashboard)
}

// dashboard shows the view for the requested username. A session bound to
// a different user, or no session at all, redirects to login without
// explanation.
func (a *DashboardController) dashboard(c *gin.Context) {
	username := c.Param("username")
	if session.GetLoginUser(c) != username {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := a.userService.GetUser(username)
	if err != nil {
		logger.Error("dashboard lookup failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if user == nil {
		// Session refers to a user that no longer exists.
		c.Redirect(http.StatusFound, "/login")
		return
	}

	html(c, "dashboard.html", "Dashboard", gin.H{
		"username": user.Username,
		"name":     user.Name,
	})
}
