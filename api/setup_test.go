package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/api"
	mock_api "github.com/ypickup/pickup-web/api/mocks"
	mock_backend "github.com/ypickup/pickup-web/backend/mocks"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/session"
	"github.com/ypickup/pickup-web/watch"
	"go.uber.org/mock/gomock"
)

var (
	now   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alice = pickup.User{ID: 1, Name: "Alice"}
	bob   = pickup.User{ID: 2, Name: "Bob"}
	carol = pickup.User{ID: 3, Name: "Carol"}
)

func intPtr(n int) *int { return &n }

func sampleGames() []pickup.Game {
	start := time.Date(2099, 6, 1, 18, 0, 0, 0, time.UTC)
	soccer := pickup.Sport{ID: 1, Name: "Soccer"}

	return []pickup.Game{
		{
			ID: 10, Name: "5v5 soccer", Sport: soccer, Location: "Park",
			StartTime: start, EndTime: start.Add(time.Hour),
			Creator: alice, CurrentState: pickup.StateOpen,
		},
		{
			ID: 11, Name: "6v6 soccer", Sport: soccer, Location: "Gym",
			StartTime: start.Add(24 * time.Hour), EndTime: start.Add(25 * time.Hour),
			Creator: carol, CurrentState: pickup.StateOpen, Capacity: intPtr(1),
			Participants: []pickup.Participant{{ID: 1, User: bob}},
		},
	}
}

type fixture struct {
	router   *gin.Engine
	remote   *mock_backend.MockAPI
	clients  *mock_api.MockClients
	sessions *mock_api.MockSessions
}

// setupRouter wires every page handler behind a fixed session. A nil
// session browses anonymously.
func setupRouter(t *testing.T, s *session.Session) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl, err := api.LoadTemplates(time.UTC)
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)

	f := fixture{
		router:   router,
		remote:   mock_backend.NewMockAPI(ctrl),
		clients:  mock_api.NewMockClients(ctrl),
		sessions: mock_api.NewMockSessions(ctrl),
	}
	f.clients.EXPECT().For(gomock.Any()).Return(f.remote).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	views := watch.NewRegistry(ctx, watch.RegistryConfig{
		Interval: time.Hour,
		IdleTTL:  time.Minute,
		Location: time.UTC,
	}, nil)
	t.Cleanup(func() {
		views.Close()
		cancel()
	})

	router.Use(func(c *gin.Context) {
		session.Set(c, s)
	})
	router.Use(api.BackendAuth(f.clients))

	api.NewLoginHandler(f.clients, f.sessions).Register(router.Group(""))
	api.NewGameHandler(views, f.sessions, api.GameConfig{
		PollInterval: 7 * time.Second,
		StartPolicy:  pickup.StartFuture,
		Location:     time.UTC,
	}).Register(router.Group("/games"))
	api.NewProfileHandler(f.sessions, time.UTC).Register(router.Group(""))

	return f
}

func signedIn() *session.Session {
	return session.New("s1", "tok", now, now)
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}
