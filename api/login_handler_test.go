package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/session"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	form := url.Values{"email": {"bob@example.com"}, "password": {"pw"}}
	creds := pickup.Credentials{Email: "bob@example.com", Password: "pw"}

	t.Run("success", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Login(gomock.Any(), creds).Return("tok", nil).Times(1)
		f.sessions.EXPECT().Establish(gomock.Any(), "tok").Return(signedIn(), nil).Times(1)

		w := postForm(f.router, "/login", form)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/games", w.Header().Get("Location"))
	})

	t.Run("rejected", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Login(gomock.Any(), creds).Return("", &backend.APIError{Status: 400, Message: "bad"}).Times(1)
		f.sessions.EXPECT().Establish(gomock.Any(), gomock.Any()).Times(0)

		w := postForm(f.router, "/login", form)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password.")
		assert.Contains(t, w.Body.String(), `value="bob@example.com"`)
	})

	t.Run("missing password is not sent", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

		w := postForm(f.router, "/login", url.Values{"email": {"bob@example.com"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Password is required.")
	})

	t.Run("session store failure", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Login(gomock.Any(), creds).Return("tok", nil).Times(1)
		f.sessions.EXPECT().Establish(gomock.Any(), "tok").Return(nil, errors.New("db down")).Times(1)

		w := postForm(f.router, "/login", form)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLoginPage(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := setupRouter(t, nil)

		w := get(f.router, "/login")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/login"`)
		assert.NotContains(t, w.Body.String(), "My Profile")
	})

	t.Run("already signed in", func(t *testing.T) {
		f := setupRouter(t, signedIn())

		w := get(f.router, "/login")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/games", w.Header().Get("Location"))
	})
}

func TestSignup(t *testing.T) {
	form := url.Values{"email": {"ada@example.com"}, "password": {"pw"}, "name": {"Ada"}}

	t.Run("success", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Signup(gomock.Any(), pickup.Signup{Name: "Ada", Email: "ada@example.com", Password: "pw"}).Return("tok", nil).Times(1)
		f.sessions.EXPECT().Establish(gomock.Any(), "tok").Return(signedIn(), nil).Times(1)

		w := postForm(f.router, "/signup", form)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/games", w.Header().Get("Location"))
	})

	t.Run("email taken", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.remote.EXPECT().Signup(gomock.Any(), gomock.Any()).Return("", &backend.APIError{Status: 400}).Times(1)

		w := postForm(f.router, "/signup", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to sign up. Maybe email is taken?")
	})
}

func TestExternalLogin(t *testing.T) {
	t.Run("redirects to single sign-on", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.clients.EXPECT().ExternalLoginURL("http://example.com/games").Return("https://cas.example.com/login?service=x", nil).Times(1)

		w := get(f.router, "/login/external")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://cas.example.com/login?service=x", w.Header().Get("Location"))
	})

	t.Run("not configured", func(t *testing.T) {
		f := setupRouter(t, nil)
		f.clients.EXPECT().ExternalLoginURL(gomock.Any()).Return("", errors.New("external login is not configured")).Times(1)

		w := get(f.router, "/login/external")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestLogout(t *testing.T) {
	f := setupRouter(t, signedIn())
	f.sessions.EXPECT().End(gomock.Any()).Return(nil).Times(1)

	w := postForm(f.router, "/logout", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, session.LoginPath, w.Header().Get("Location"))
}
