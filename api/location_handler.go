package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ypickup/pickup-web/geocode"
)

type LocationHandler struct {
	geocoder geocode.Geocoder
}

func NewLocationHandler(geocoder geocode.Geocoder) *LocationHandler {
	return &LocationHandler{geocoder: geocoder}
}

func (h *LocationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/reverse", h.Reverse)
}

func (h *LocationHandler) Search(c *gin.Context) {
	places, err := h.geocoder.Autocomplete(c.Request.Context(), c.Query("q"))

	if err != nil {
		h.fail(c, err, "failed to search locations")
		return
	}

	c.IndentedJSON(http.StatusOK, places)
}

func (h *LocationHandler) Reverse(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)

	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	places, err := h.geocoder.Reverse(c.Request.Context(), lat, lng)

	if err != nil {
		h.fail(c, err, "failed to look up address")
		return
	}

	c.IndentedJSON(http.StatusOK, places)
}

func (h *LocationHandler) fail(c *gin.Context, err error, message string) {
	c.Error(err)

	switch {
	case errors.Is(err, geocode.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "query cannot be empty"})
	case errors.Is(err, geocode.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "location search is not configured"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": message})
	}
}
