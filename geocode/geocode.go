package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

var ErrDisabled = errors.New("geocoding is not configured")

var ErrEmptyQuery = errors.New("query cannot be empty")

type Place struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

//go:generate mockgen -destination=mocks/mock_geocode.go -package=mocks . Geocoder

type Geocoder interface {
	Autocomplete(ctx context.Context, query string) ([]Place, error)
	Reverse(ctx context.Context, lat, lng float64) ([]Place, error)
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache: cache.New(10*time.Minute, 20*time.Minute),
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) Autocomplete(ctx context.Context, query string) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return c.lookup(ctx, url.Values{"address": {query}})
}

func (c *Client) Reverse(ctx context.Context, lat, lng float64) ([]Place, error) {
	latlng := strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lng, 'f', 6, 64)

	return c.lookup(ctx, url.Values{"latlng": {latlng}})
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *Client) lookup(ctx context.Context, params url.Values) ([]Place, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	key := params.Encode()
	if cached, found := c.cache.Get(key); found {
		return cached.([]Place), nil
	}

	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	var payload geocodeResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	switch payload.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("geocoding failed with status %s: %s", payload.Status, payload.ErrorMessage)
	}

	places := make([]Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, Place{
			Address: r.FormattedAddress,
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
		})
	}

	c.cache.Set(key, places, cache.DefaultExpiration)

	return places, nil
}
