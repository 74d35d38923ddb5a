package controllers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"tour-booking/config"
	"tour-booking/middleware"
	"tour-booking/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles the single-admin login.
type AuthController struct {
	Sessions *services.SessionStore
	Cfg      config.Config
}

func NewAuthController(sessions *services.SessionStore, cfg config.Config) *AuthController {
	return &AuthController{Sessions: sessions, Cfg: cfg}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func (ac *AuthController) credentialsValid(username, password string) bool {
	if ac.Cfg.AdminPassword == "" {
		return false
	}
	if username != ac.Cfg.AdminUsername {
		return false
	}
	if isBcryptHash(ac.Cfg.AdminPassword) {
		return bcrypt.CompareHashAndPassword([]byte(ac.Cfg.AdminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(ac.Cfg.AdminPassword), []byte(password)) == 1
}

// ShowLogin renders the login form, or redirects straight to the profile
// when a live session already exists.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if username, ok := ac.Sessions.Lookup(token); ok {
			c.Redirect(http.StatusSeeOther, "/profile/"+username)
			return
		}
	}
	c.HTML(http.StatusOK, "admin_login.html", nil)
}

func (ac *AuthController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("psw")

	if !ac.credentialsValid(username, password) {
		log.Printf("failed admin login attempt for %q", username)
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error": "invalid username or password",
		})
		return
	}

	token := ac.Sessions.Create(username)
	c.SetCookie(middleware.SessionCookie, token, int(ac.Cfg.SessionTTL.Seconds()), "/", "", false, true)

	log.Printf("admin %s logged in", username)
	c.Redirect(http.StatusSeeOther, "/profile/"+username)
}
