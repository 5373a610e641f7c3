package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/session"
)

//go:generate mockgen -destination=mocks/mock_clients.go -package=mocks . Clients
//go:generate mockgen -destination=mocks/mock_sessions.go -package=mocks . Sessions

const clientKey = "backend"

// Clients hands out backend clients bound to a session's token.
type Clients interface {
	For(creds backend.Credentials) backend.API
	ExternalLoginURL(returnTo string) (string, error)
}

type Sessions interface {
	Establish(c *gin.Context, token string) (*session.Session, error)
	End(c *gin.Context) error
}

// BackendAuth attaches a backend client carrying the session's token.
func BackendAuth(clients Clients) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientKey, clients.For(session.Current(c)))
	}
}

func backendFor(c *gin.Context) backend.API {
	return c.MustGet(clientKey).(backend.API)
}

// expired signs the visitor out when the backend no longer accepts the
// session's token. It reports whether the response was written.
func expired(c *gin.Context, sessions Sessions, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}

	c.Error(err)

	if endErr := sessions.End(c); endErr != nil {
		c.Error(endErr)
	}

	c.Redirect(http.StatusFound, session.LoginPath)
	c.Abort()

	return true
}

// expiredJSON is expired for the endpoints fetched by page scripts.
func expiredJSON(c *gin.Context, sessions Sessions, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}

	c.Error(err)

	if endErr := sessions.End(c); endErr != nil {
		c.Error(endErr)
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})

	return true
}
