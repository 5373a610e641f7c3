package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/watch"
	"golang.org/x/sync/errgroup"
)

type ProfileHandler struct {
	sessions Sessions
	loc      *time.Location
}

func NewProfileHandler(sessions Sessions, loc *time.Location) *ProfileHandler {
	if loc == nil {
		loc = time.Local
	}

	return &ProfileHandler{
		sessions: sessions,
		loc:      loc,
	}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Profile)
	rg.GET("/profile/setup", h.SetupPage)
	rg.POST("/profile/setup", h.Setup)
	rg.GET("/profile/:id", h.Public)
	rg.GET("/my-games", h.MyGames)
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	profile, err := backendFor(c).Profile(c.Request.Context())

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		renderError(c, http.StatusBadGateway, "Failed to fetch profile.")
		return
	}

	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"Title":   "My Profile",
		"Profile": profile,
	})
}

func (h *ProfileHandler) setupPage(c *gin.Context, status int, data gin.H) {
	sports, err := backendFor(c).Sports(c.Request.Context())

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
	}

	data["Title"] = "Set Up Profile"
	data["Sports"] = sports

	render(c, status, "profile_setup.tmpl", data)
}

func (h *ProfileHandler) SetupPage(c *gin.Context) {
	profile, err := backendFor(c).Profile(c.Request.Context())

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		renderError(c, http.StatusBadGateway, "Failed to fetch profile.")
		return
	}

	h.setupPage(c, http.StatusOK, gin.H{
		"Form": pickup.ProfileFormFrom(profile),
	})
}

func (h *ProfileHandler) Setup(c *gin.Context) {
	var form pickup.ProfileForm

	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	payload, err := form.Validate()

	if err != nil {
		h.setupPage(c, http.StatusUnprocessableEntity, gin.H{
			"Form":   form,
			"Errors": err,
		})
		return
	}

	if err := backendFor(c).UpdateProfile(c.Request.Context(), payload); err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		h.setupPage(c, http.StatusBadGateway, gin.H{
			"Form":  form,
			"Alert": "Failed to update profile.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

func (h *ProfileHandler) Public(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		renderError(c, http.StatusNotFound, "User not found.")
		return
	}

	profile, err := backendFor(c).PublicProfile(c.Request.Context(), id)

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		if errors.Is(err, backend.ErrNotFound) {
			renderError(c, http.StatusNotFound, "User not found.")
			return
		}
		renderError(c, http.StatusBadGateway, "Failed to fetch profile.")
		return
	}

	render(c, http.StatusOK, "public_profile.tmpl", gin.H{
		"Title":   profile.User().DisplayName(),
		"Profile": profile,
	})
}

// MyGames lists the viewer's upcoming and archived games side by side.
func (h *ProfileHandler) MyGames(c *gin.Context) {
	api := backendFor(c)

	var (
		profile  pickup.Profile
		upcoming []pickup.Game
		archived []pickup.Game
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		profile, err = api.Profile(ctx)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = api.MyGames(ctx)
		return err
	})
	g.Go(func() (err error) {
		archived, err = api.MyArchivedGames(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		renderError(c, http.StatusBadGateway, "Unable to load games.")
		return
	}

	render(c, http.StatusOK, "my_games.tmpl", gin.H{
		"Title":    "My Games",
		"Upcoming": h.items(upcoming, profile.ID),
		"Archived": h.items(archived, profile.ID),
	})
}

func (h *ProfileHandler) items(games []pickup.Game, userID int) []watch.GameItem {
	items := make([]watch.GameItem, 0, len(games))
	for _, g := range games {
		items = append(items, watch.NewGameItem(g, userID, h.loc))
	}
	return items
}
