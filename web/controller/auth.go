package controller

import (
	"errors"
	"net/http"

	"userdash/config"
	"userdash/logger"
	"userdash/web/middleware"
	"userdash/web/service"
	"userdash/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Name     string `form:"name"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AuthController handles user registration and login.
type AuthController struct {
	BaseController

	userService service.UserService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a new account and sends the client to the login page.
// Validation failures re-render the form with an inline error; storage
// faults become a plain server error.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "Register", gin.H{"error": service.ErrMissingField.Error()})
		return
	}

	_, err := a.userService.Register(form.Username, form.Password, form.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrDuplicateUsername),
			errors.Is(err, service.ErrWeakPassword):
			html(c, "register.html", "Register", gin.H{"error": err.Error()})
		default:
			logger.Error("register failed:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

// login verifies the credentials and binds the session to the username.
// Unknown username and wrong password produce the identical inline error.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login", gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	user, err := a.userService.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warningf("failed login for %q, IP: %s, request: %s", form.Username, getRemoteIp(c), middleware.GetRequestID(c))
			html(c, "login.html", "Login", gin.H{"error": service.ErrInvalidCredentials.Error()})
		} else {
			logger.Error("login failed:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user.Username); err != nil {
		logger.Error("unable to save session:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("User logged in: %s, IP: %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/dashboard/"+user.Username)
}
