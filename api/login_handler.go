package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/session"
)

const homePath = "/games"

type LoginHandler struct {
	clients  Clients
	sessions Sessions
}

func NewLoginHandler(clients Clients, sessions Sessions) *LoginHandler {
	return &LoginHandler{
		clients:  clients,
		sessions: sessions,
	}
}

func (h *LoginHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", h.Login)
	rg.GET("/login/external", h.External)
	rg.GET("/signup", h.SignupPage)
	rg.POST("/signup", h.Signup)
	rg.GET("/logout", h.Logout)
	rg.POST("/logout", h.Logout)
}

func (h *LoginHandler) LoginPage(c *gin.Context) {
	if session.Current(c).Authenticated() {
		c.Redirect(http.StatusFound, homePath)
		return
	}

	render(c, http.StatusOK, "login.tmpl", gin.H{"Title": "Login"})
}

func (h *LoginHandler) Login(c *gin.Context) {
	var creds pickup.Credentials

	if err := c.ShouldBind(&creds); err != nil {
		c.Error(err)
	}

	if err := creds.Validate(); err != nil {
		render(c, http.StatusUnprocessableEntity, "login.tmpl", gin.H{
			"Title":  "Login",
			"Email":  creds.Email,
			"Errors": err,
		})
		return
	}

	token, err := h.clients.For(nil).Login(c.Request.Context(), creds)

	if err == nil && token == "" {
		err = errors.New("login returned no token")
	}

	if err != nil {
		c.Error(err)
		render(c, http.StatusUnauthorized, "login.tmpl", gin.H{
			"Title": "Login",
			"Email": creds.Email,
			"Alert": "Invalid email or password.",
		})
		return
	}

	if _, err := h.sessions.Establish(c, token); err != nil {
		c.Error(err)
		renderError(c, http.StatusInternalServerError, "Failed to start your session.")
		return
	}

	c.Redirect(http.StatusFound, homePath)
}

func (h *LoginHandler) SignupPage(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{
		"Title": "Sign Up",
		"Form":  pickup.Signup{},
	})
}

func (h *LoginHandler) Signup(c *gin.Context) {
	var signup pickup.Signup

	if err := c.ShouldBind(&signup); err != nil {
		c.Error(err)
	}

	if err := signup.Validate(); err != nil {
		render(c, http.StatusUnprocessableEntity, "signup.tmpl", gin.H{
			"Title":  "Sign Up",
			"Form":   signup,
			"Errors": err,
		})
		return
	}

	token, err := h.clients.For(nil).Signup(c.Request.Context(), signup)

	if err == nil && token == "" {
		err = errors.New("signup returned no token")
	}

	if err != nil {
		c.Error(err)
		render(c, http.StatusBadRequest, "signup.tmpl", gin.H{
			"Title": "Sign Up",
			"Form":  signup,
			"Alert": "Failed to sign up. Maybe email is taken?",
		})
		return
	}

	if _, err := h.sessions.Establish(c, token); err != nil {
		c.Error(err)
		renderError(c, http.StatusInternalServerError, "Failed to start your session.")
		return
	}

	c.Redirect(http.StatusFound, homePath)
}

// External sends the browser to single sign-on. The backend comes back to
// /games with ?token=, which the session guard consumes.
func (h *LoginHandler) External(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	target, err := h.clients.ExternalLoginURL(scheme + "://" + c.Request.Host + homePath)

	if err != nil {
		c.Error(err)
		render(c, http.StatusServiceUnavailable, "login.tmpl", gin.H{
			"Title": "Login",
			"Alert": "Single sign-on is not available.",
		})
		return
	}

	c.Redirect(http.StatusFound, target)
}

func (h *LoginHandler) Logout(c *gin.Context) {
	if err := h.sessions.End(c); err != nil {
		c.Error(err)
	}

	c.Redirect(http.StatusFound, session.LoginPath)
}
