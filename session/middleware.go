package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	contextKey = "session"
	// TokenParam carries the token back from the external login redirect.
	TokenParam = "token"
	LoginPath  = "/login"
)

// Guard loads the caller's session on every request. A token arriving in
// the query string is persisted and stripped with a redirect before any
// handler runs.
func Guard(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var current *Session

		if id, err := c.Cookie(m.cfg.CookieName); err == nil && id != "" {
			s, err := m.Load(c.Request.Context(), id)

			switch {
			case err == nil:
				current = s
			case errors.Is(err, ErrSessionNotFound):
				m.clearCookie(c)
			default:
				c.Error(err)
			}
		}

		if token := c.Query(TokenParam); token != "" {
			s, err := m.Login(c.Request.Context(), current, token)

			if err != nil {
				c.Error(err)
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}

			m.writeCookie(c, s)

			clean := *c.Request.URL
			q := clean.Query()
			q.Del(TokenParam)
			clean.RawQuery = q.Encode()

			c.Redirect(http.StatusFound, clean.RequestURI())
			c.Abort()
			return
		}

		Set(c, current)
	}
}

// RequireAuth sends anonymous visitors to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Current(c).Authenticated() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
	}
}

// Set makes s the request's session.
func Set(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// Current returns the request's session, nil when anonymous.
func Current(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// Establish persists token for the request's session and refreshes the cookie.
func (m *Manager) Establish(c *gin.Context, token string) (*Session, error) {
	s, err := m.Login(c.Request.Context(), Current(c), token)
	if err != nil {
		return nil, err
	}

	m.writeCookie(c, s)
	Set(c, s)

	return s, nil
}

// End logs the request's session out and clears the cookie.
func (m *Manager) End(c *gin.Context) error {
	err := m.Logout(c.Request.Context(), Current(c))

	m.clearCookie(c)
	Set(c, nil)

	return err
}

func (m *Manager) writeCookie(c *gin.Context, s *Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, s.ID, int(m.cfg.IdleTTL.Seconds()), "/", "", m.cfg.Secure, true)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.Secure, true)
}
