package session

import (
	"userdash/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CookieName identifies the session cookie.
const CookieName = "userdash"

const loginUser = "LOGIN_USER"

// SetLoginUser binds the session to the authenticated username.
func SetLoginUser(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(loginUser, username)
	return s.Save()
}

// GetLoginUser returns the authenticated username, empty when anonymous.
func GetLoginUser(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if username, ok := obj.(string); ok {
			return username
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != ""
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(cookieOptions(maxAge))
	return s.Save()
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(cookieOptions(-1))
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", config.GetSessionCookieSecure(), config.GetSessionCookieHTTPOnly())
	return nil
}

func cookieOptions(maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   config.GetSessionCookieSecure(),
		HttpOnly: config.GetSessionCookieHTTPOnly(),
		SameSite: config.GetSessionCookieSameSite(),
	}
}
