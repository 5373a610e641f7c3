package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/api"
	"github.com/ypickup/pickup-web/geocode"
	mock_geocode "github.com/ypickup/pickup-web/geocode/mocks"
	"go.uber.org/mock/gomock"
)

func setupLocationRouter(t *testing.T) (*gin.Engine, *mock_geocode.MockGeocoder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	geocoder := mock_geocode.NewMockGeocoder(ctrl)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.NewLocationHandler(geocoder).Register(router.Group("/location"))

	return router, geocoder
}

func TestLocationSearch(t *testing.T) {
	t.Run("suggestions", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		places := []geocode.Place{{Address: "Payne Whitney Gym, New Haven", Lat: 41.31, Lng: -72.93}}
		geocoder.EXPECT().Autocomplete(gomock.Any(), "payne").Return(places, nil).Times(1)

		w := get(router, "/location/search?q=payne")

		require.Equal(t, http.StatusOK, w.Code)
		var got []geocode.Place
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, places, got)
	})

	t.Run("empty query", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		geocoder.EXPECT().Autocomplete(gomock.Any(), "").Return(nil, geocode.ErrEmptyQuery).Times(1)

		w := get(router, "/location/search")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not configured", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		geocoder.EXPECT().Autocomplete(gomock.Any(), "gym").Return(nil, geocode.ErrDisabled).Times(1)

		w := get(router, "/location/search?q=gym")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		geocoder.EXPECT().Autocomplete(gomock.Any(), "gym").Return(nil, errors.New("quota exceeded")).Times(1)

		w := get(router, "/location/search?q=gym")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestLocationReverse(t *testing.T) {
	t.Run("address", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		geocoder.EXPECT().Reverse(gomock.Any(), 41.31, -72.93).Return([]geocode.Place{{Address: "New Haven"}}, nil).Times(1)

		w := get(router, "/location/reverse?lat=41.31&lng=-72.93")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New Haven")
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		router, geocoder := setupLocationRouter(t)
		geocoder.EXPECT().Reverse(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, target := range []string{
			"/location/reverse",
			"/location/reverse?lat=abc&lng=1",
			"/location/reverse?lat=91&lng=0",
			"/location/reverse?lat=0&lng=181",
		} {
			w := get(router, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})
}
