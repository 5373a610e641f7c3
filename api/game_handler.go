package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/session"
	"github.com/ypickup/pickup-web/watch"
)

type GameConfig struct {
	PollInterval time.Duration
	StartPolicy  pickup.StartPolicy
	Location     *time.Location
}

type GameHandler struct {
	views    *watch.Registry
	sessions Sessions
	cfg      GameConfig
	now      func() time.Time
}

func NewGameHandler(views *watch.Registry, sessions Sessions, cfg GameConfig) *GameHandler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.StartPolicy == "" {
		cfg.StartPolicy = pickup.StartFuture
	}

	return &GameHandler{
		views:    views,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (h *GameHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/new", h.New)
	rg.POST("/new", h.Create)
	rg.GET("/users/search", h.SearchUsers)
	rg.POST("/participant", h.Participant)

	rg.GET("/:id", h.Detail)
	rg.GET("/:id/edit", h.Edit)
	rg.POST("/:id/edit", h.Update)
	rg.POST("/:id/join", h.Act(watch.ActionJoin))
	rg.POST("/:id/leave", h.Act(watch.ActionLeave))
	rg.POST("/:id/cancel", h.Act(watch.ActionCancel))
	rg.POST("/:id/delete", h.Act(watch.ActionDelete))
	rg.POST("/:id/comments", h.Comment)
}

func (h *GameHandler) pollSeconds() int {
	return int(h.cfg.PollInterval.Round(time.Second) / time.Second)
}

func filterFromQuery(c *gin.Context) pickup.Filter {
	f := pickup.Filter{
		Name:     c.Query("name"),
		Sport:    c.Query("sport"),
		Location: c.Query("location"),
	}

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(time.DateOnly, date); err == nil {
			f.Date = date
		}
	}

	return f
}

// withoutParam is the request URI minus one query parameter.
func withoutParam(c *gin.Context, name string) string {
	u := *c.Request.URL
	q := u.Query()
	q.Del(name)
	u.RawQuery = q.Encode()

	return u.RequestURI()
}

func withParam(c *gin.Context, name, value string) string {
	u := *c.Request.URL
	q := u.Query()
	q.Set(name, value)
	u.RawQuery = q.Encode()

	return u.RequestURI()
}

func (h *GameHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	list := h.views.GameList(ctx, session.Current(c).ID, backendFor(c))

	list.SetFilter(filterFromQuery(c))

	if _, ok := c.GetQuery("refresh"); ok {
		if err := list.Refresh(ctx); err != nil {
			c.Error(err)
		}
		c.Redirect(http.StatusFound, withoutParam(c, "refresh"))
		return
	}

	if player, ok := c.GetQuery("player"); ok {
		if _, err := list.SearchParticipants(ctx, player); err != nil {
			if expired(c, h.sessions, err) {
				return
			}
			c.Error(err)
		}
	}

	view := list.View()

	if expired(c, h.sessions, view.Err) {
		return
	}

	data := gin.H{
		"Title":      "Games",
		"View":       view,
		"Refresh":    h.pollSeconds(),
		"RefreshURL": withParam(c, "refresh", "1"),
		"Return":     c.Request.URL.RequestURI(),
	}

	switch {
	case view.Err != nil:
		c.Error(view.Err)
		data["Banner"] = "Unable to load games."
	case view.Loaded && view.Profile == nil:
		data["Banner"] = "Unable to load your profile. Game actions are unavailable."
	}

	render(c, http.StatusOK, "games.tmpl", data)
}

func (h *GameHandler) SearchUsers(c *gin.Context) {
	ctx := c.Request.Context()
	list := h.views.GameList(ctx, session.Current(c).ID, backendFor(c))

	users, err := list.SearchParticipants(ctx, c.Query("q"))

	if err != nil {
		if expiredJSON(c, h.sessions, err) {
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}

	if users == nil {
		users = []pickup.User{}
	}

	c.IndentedJSON(http.StatusOK, users)
}

// Participant pins the list to one user's games, or clears the pin when no
// user_id is posted.
func (h *GameHandler) Participant(c *gin.Context) {
	ctx := c.Request.Context()
	list := h.views.GameList(ctx, session.Current(c).ID, backendFor(c))
	back := localPath(c.PostForm("return"), homePath)

	id, err := strconv.Atoi(c.PostForm("user_id"))

	if err != nil || id <= 0 {
		list.SearchParticipants(ctx, "")
		c.Redirect(http.StatusFound, back)
		return
	}

	list.PinParticipant(pickup.User{
		ID:    id,
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
	})

	c.Redirect(http.StatusFound, back)
}

func gameID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *GameHandler) Detail(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		renderError(c, http.StatusNotFound, "Game not found.")
		return
	}

	ctx := c.Request.Context()
	sid := session.Current(c).ID
	detail := h.views.GameDetail(ctx, sid, id, backendFor(c))

	if _, ok := c.GetQuery("refresh"); ok {
		if err := detail.Refresh(ctx); err != nil {
			c.Error(err)
		}
		c.Redirect(http.StatusFound, withoutParam(c, "refresh"))
		return
	}

	view := detail.View()

	if view.Gone {
		h.views.Forget(sid, id)
		c.Redirect(http.StatusFound, homePath)
		return
	}

	if expired(c, h.sessions, view.Err) {
		return
	}

	if !view.Loaded {
		c.Error(view.Err)
		h.views.Forget(sid, id)

		if errors.Is(view.Err, pickup.ErrGameNotFound) {
			renderError(c, http.StatusNotFound, "Game not found.")
			return
		}

		renderError(c, http.StatusBadGateway, "Failed to load game details.")
		return
	}

	data := gin.H{
		"Title":      view.Game.Name,
		"View":       view,
		"Refresh":    h.pollSeconds(),
		"RefreshURL": withParam(c, "refresh", "1"),
		"Item":       watch.NewGameItem(view.Game, view.Profile.ID, h.cfg.Location),
	}

	if view.Err != nil {
		c.Error(view.Err)
		data["Banner"] = "Failed to load game details."
	}

	render(c, http.StatusOK, "game.tmpl", data)
}

// Act runs a join, leave, cancel or delete posted from the list or the
// detail page and sends the browser back where it came from.
func (h *GameHandler) Act(a watch.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			renderError(c, http.StatusNotFound, "Game not found.")
			return
		}

		ctx := c.Request.Context()
		sid := session.Current(c).ID
		fromDetail := c.PostForm("from") == "detail"

		var err error
		if fromDetail {
			err = h.views.GameDetail(ctx, sid, id, backendFor(c)).Do(ctx, a)
		} else {
			err = h.views.GameList(ctx, sid, backendFor(c)).Do(ctx, a, id)
		}

		if expired(c, h.sessions, err) {
			return
		}

		if err != nil {
			c.Error(err)
			setFlash(c, a.FailureMessage())
		}

		switch {
		case a == watch.ActionDelete && err == nil:
			h.views.Forget(sid, id)
			c.Redirect(http.StatusFound, homePath)
		case fromDetail:
			c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", id))
		default:
			c.Redirect(http.StatusFound, localPath(c.PostForm("return"), homePath))
		}
	}
}

func (h *GameHandler) Comment(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		renderError(c, http.StatusNotFound, "Game not found.")
		return
	}

	ctx := c.Request.Context()
	detail := h.views.GameDetail(ctx, session.Current(c).ID, id, backendFor(c))

	_, err := detail.PostComment(ctx, c.PostForm("text"))

	if expired(c, h.sessions, err) {
		return
	}

	switch {
	case errors.Is(err, watch.ErrEmptyComment):
		setFlash(c, "Comment cannot be empty.")
	case errors.Is(err, pickup.ErrNotAllowed):
		c.Error(err)
		setFlash(c, "Only players in this game can comment.")
	case err != nil:
		c.Error(err)
		setFlash(c, "Failed to post comment.")
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d#comments", id))
}

func (h *GameHandler) formPage(c *gin.Context, status int, data gin.H) {
	sports, err := backendFor(c).Sports(c.Request.Context())

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		data["Banner"] = "Failed to load sports."
	}

	data["Sports"] = sports
	data["GeocodeURL"] = "/location/search"

	render(c, status, "game_form.tmpl", data)
}

func (h *GameHandler) New(c *gin.Context) {
	h.formPage(c, http.StatusOK, gin.H{
		"Title":  "Create Game",
		"Action": "/games/new",
		"Form":   pickup.GameForm{SkillLevel: string(pickup.SkillAll)},
	})
}

func (h *GameHandler) Create(c *gin.Context) {
	var form pickup.GameForm

	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	payload, err := form.Validate(h.now(), h.cfg.StartPolicy, h.cfg.Location)

	if err != nil {
		h.formPage(c, http.StatusUnprocessableEntity, gin.H{
			"Title":  "Create Game",
			"Action": "/games/new",
			"Form":   form,
			"Errors": err,
		})
		return
	}

	game, err := backendFor(c).CreateGame(c.Request.Context(), payload)

	if err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		h.formPage(c, http.StatusBadGateway, gin.H{
			"Title":  "Create Game",
			"Action": "/games/new",
			"Form":   form,
			"Alert":  "Failed to create game.",
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", game.ID))
}

// editable loads the game and checks that the viewer created it. It writes
// the response itself when the answer is no.
func (h *GameHandler) editable(c *gin.Context, id int) (pickup.Game, bool) {
	ctx := c.Request.Context()
	api := backendFor(c)

	game, err := api.Game(ctx, id)
	if err == nil {
		var profile pickup.Profile
		profile, err = api.Profile(ctx)
		if err == nil && !pickup.IsCreator(game, profile.ID) {
			renderError(c, http.StatusForbidden, "Only the creator can edit this game.")
			return pickup.Game{}, false
		}
	}

	if err != nil {
		if expired(c, h.sessions, err) {
			return pickup.Game{}, false
		}
		c.Error(err)
		if errors.Is(err, backend.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Game not found.")
		} else {
			renderError(c, http.StatusBadGateway, "Failed to load game details.")
		}
		return pickup.Game{}, false
	}

	return game, true
}

func (h *GameHandler) Edit(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		renderError(c, http.StatusNotFound, "Game not found.")
		return
	}

	game, ok := h.editable(c, id)
	if !ok {
		return
	}

	h.formPage(c, http.StatusOK, gin.H{
		"Title":  "Edit Game",
		"Action": fmt.Sprintf("/games/%d/edit", id),
		"Form":   pickup.FormFromGame(game, h.cfg.Location),
		"GameID": id,
	})
}

func (h *GameHandler) Update(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		renderError(c, http.StatusNotFound, "Game not found.")
		return
	}

	var form pickup.GameForm

	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	action := fmt.Sprintf("/games/%d/edit", id)
	payload, err := form.Validate(h.now(), h.cfg.StartPolicy, h.cfg.Location)

	if err != nil {
		h.formPage(c, http.StatusUnprocessableEntity, gin.H{
			"Title":  "Edit Game",
			"Action": action,
			"Form":   form,
			"Errors": err,
			"GameID": id,
		})
		return
	}

	if _, err := backendFor(c).UpdateGame(c.Request.Context(), id, payload); err != nil {
		if expired(c, h.sessions, err) {
			return
		}
		c.Error(err)
		h.formPage(c, http.StatusBadGateway, gin.H{
			"Title":  "Edit Game",
			"Action": action,
			"Form":   form,
			"Alert":  "Failed to update the game.",
			"GameID": id,
		})
		return
	}

	h.views.Forget(session.Current(c).ID, id)

	c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", id))
}
