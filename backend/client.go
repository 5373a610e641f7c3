package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ypickup/pickup-web/pickup"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks . API

// Credentials supplies the token attached to outgoing requests. An empty
// token sends the request unauthenticated.
type Credentials interface {
	Token() string
}

// Token is a fixed credential.
type Token string

func (t Token) Token() string { return string(t) }

type API interface {
	Login(ctx context.Context, creds pickup.Credentials) (string, error)
	Signup(ctx context.Context, signup pickup.Signup) (string, error)
	Sports(ctx context.Context) ([]pickup.Sport, error)
	Games(ctx context.Context) ([]pickup.Game, error)
	Game(ctx context.Context, id int) (pickup.Game, error)
	CreateGame(ctx context.Context, payload pickup.GamePayload) (pickup.Game, error)
	UpdateGame(ctx context.Context, id int, payload pickup.GamePayload) (pickup.Game, error)
	DeleteGame(ctx context.Context, id int) error
	JoinGame(ctx context.Context, id int) error
	LeaveGame(ctx context.Context, id int) error
	CancelGame(ctx context.Context, id int) error
	Comments(ctx context.Context, gameID int) ([]pickup.Comment, error)
	PostComment(ctx context.Context, gameID int, text string) (pickup.Comment, error)
	Profile(ctx context.Context) (pickup.Profile, error)
	PublicProfile(ctx context.Context, id int) (pickup.Profile, error)
	UpdateProfile(ctx context.Context, payload pickup.ProfilePayload) error
	MyGames(ctx context.Context) ([]pickup.Game, error)
	MyArchivedGames(ctx context.Context) ([]pickup.Game, error)
	SearchUsers(ctx context.Context, query string) ([]pickup.User, error)
}

type Config struct {
	BaseURL          string
	ExternalLoginURL string
	Timeout          time.Duration
	SearchTTL        time.Duration
}

// Connector owns the transport and caches shared by every session's client.
type Connector struct {
	baseURL          string
	externalLoginURL string
	client           *http.Client
	cache            *cache.Cache
}

func NewConnector(cfg Config) *Connector {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	return NewConnectorWithClient(cfg, client)
}

func NewConnectorWithClient(cfg Config, client *http.Client) *Connector {
	ttl := cfg.SearchTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Connector{
		baseURL:          cfg.BaseURL,
		externalLoginURL: cfg.ExternalLoginURL,
		client:           client,
		cache:            cache.New(ttl, 2*ttl),
	}
}

// For returns a client bound to creds.
func (c *Connector) For(creds Credentials) API {
	return &Client{
		baseURL: c.baseURL,
		creds:   creds,
		client:  c.client,
		cache:   c.cache,
	}
}

// ExternalLoginURL is where the browser is sent for single sign-on. The
// backend redirects back to returnTo with the token as a query parameter.
func (c *Connector) ExternalLoginURL(returnTo string) (string, error) {
	if c.externalLoginURL == "" {
		return "", fmt.Errorf("external login is not configured")
	}

	loginURL, err := url.Parse(c.externalLoginURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse external login URL: %w", err)
	}

	q := loginURL.Query()
	q.Set("service", returnTo)
	loginURL.RawQuery = q.Encode()

	return loginURL.String(), nil
}

type Client struct {
	baseURL string
	creds   Credentials
	client  *http.Client
	cache   *cache.Cache
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, creds pickup.Credentials) (string, error) {
	var res tokenResponse
	if err := c.do(ctx, http.MethodPost, creds, &res, "login/"); err != nil {
		return "", err
	}

	return res.Token, nil
}

func (c *Client) Signup(ctx context.Context, signup pickup.Signup) (string, error) {
	var res tokenResponse
	if err := c.do(ctx, http.MethodPost, signup, &res, "signup/"); err != nil {
		return "", err
	}

	return res.Token, nil
}

const sportsKey = "sports"

// Sports is the same for every user and is memoised across sessions.
func (c *Client) Sports(ctx context.Context) ([]pickup.Sport, error) {
	if cached, found := c.cache.Get(sportsKey); found {
		return cached.([]pickup.Sport), nil
	}

	sports := []pickup.Sport{}
	if err := c.do(ctx, http.MethodGet, nil, &sports, "sports/"); err != nil {
		return nil, err
	}

	c.cache.Set(sportsKey, sports, cache.DefaultExpiration)

	return sports, nil
}

func (c *Client) Games(ctx context.Context) ([]pickup.Game, error) {
	games := []pickup.Game{}
	err := c.do(ctx, http.MethodGet, nil, &games, "games/")

	return games, err
}

func (c *Client) Game(ctx context.Context, id int) (pickup.Game, error) {
	var game pickup.Game
	err := c.do(ctx, http.MethodGet, nil, &game, "games", strconv.Itoa(id)+"/")

	return game, err
}

func (c *Client) CreateGame(ctx context.Context, payload pickup.GamePayload) (pickup.Game, error) {
	var game pickup.Game
	err := c.do(ctx, http.MethodPost, payload, &game, "games", "create/")

	return game, err
}

func (c *Client) UpdateGame(ctx context.Context, id int, payload pickup.GamePayload) (pickup.Game, error) {
	var game pickup.Game
	err := c.do(ctx, http.MethodPut, payload, &game, "games", strconv.Itoa(id), "update/")

	return game, err
}

func (c *Client) DeleteGame(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "games", strconv.Itoa(id), "delete/")
}

func (c *Client) JoinGame(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, nil, nil, "games", strconv.Itoa(id), "join/")
}

func (c *Client) LeaveGame(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, nil, nil, "games", strconv.Itoa(id), "leave/")
}

func (c *Client) CancelGame(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, nil, nil, "games", strconv.Itoa(id), "cancel/")
}

func (c *Client) Comments(ctx context.Context, gameID int) ([]pickup.Comment, error) {
	comments := []pickup.Comment{}
	err := c.do(ctx, http.MethodGet, nil, &comments, "games", strconv.Itoa(gameID), "comments/")

	return comments, err
}

func (c *Client) PostComment(ctx context.Context, gameID int, text string) (pickup.Comment, error) {
	var comment pickup.Comment
	body := map[string]string{"text": text}
	err := c.do(ctx, http.MethodPost, body, &comment, "games", strconv.Itoa(gameID), "comments/")

	return comment, err
}

func (c *Client) Profile(ctx context.Context) (pickup.Profile, error) {
	var profile pickup.Profile
	err := c.do(ctx, http.MethodGet, nil, &profile, "profile/")

	return profile, err
}

func (c *Client) PublicProfile(ctx context.Context, id int) (pickup.Profile, error) {
	var profile pickup.Profile
	err := c.do(ctx, http.MethodGet, nil, &profile, "profile", strconv.Itoa(id)+"/")

	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, payload pickup.ProfilePayload) error {
	return c.do(ctx, http.MethodPut, payload, nil, "profile", "update/")
}

func (c *Client) MyGames(ctx context.Context) ([]pickup.Game, error) {
	games := []pickup.Game{}
	err := c.do(ctx, http.MethodGet, nil, &games, "my-games/")

	return games, err
}

func (c *Client) MyArchivedGames(ctx context.Context) ([]pickup.Game, error) {
	games := []pickup.Game{}
	err := c.do(ctx, http.MethodGet, nil, &games, "my-archived-games/")

	return games, err
}

// SearchUsers backs the participant typeahead, which fires on every
// keystroke. Results are memoised per token and query.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]pickup.User, error) {
	query = strings.TrimSpace(query)
	key := c.token() + "\x00" + strings.ToLower(query)

	if cached, found := c.cache.Get(key); found {
		return cached.([]pickup.User), nil
	}

	searchURL, err := c.getURL("users/")
	if err != nil {
		return nil, err
	}

	searchURL += "?" + url.Values{"search": {query}}.Encode()

	users := []pickup.User{}
	if err := c.send(ctx, http.MethodGet, searchURL, nil, &users); err != nil {
		return nil, err
	}

	c.cache.Set(key, users, cache.DefaultExpiration)

	return users, nil
}

func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

func (c *Client) do(ctx context.Context, method string, body, out any, elem ...string) error {
	reqURL, err := c.getURL(elem...)
	if err != nil {
		return err
	}

	return c.send(ctx, method, reqURL, body, out)
}

func (c *Client) send(ctx context.Context, method, reqURL string, body, out any) error {
	var reader io.Reader = http.NoBody

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: res.StatusCode, Message: errorMessage(bodyBytes)}
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

// errorMessage extracts the server supplied message, if any.
func errorMessage(body []byte) string {
	var msg struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}

	switch {
	case msg.Error != "":
		return msg.Error
	case msg.Detail != "":
		return msg.Detail
	default:
		return msg.Message
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
