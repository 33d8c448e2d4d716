package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"trip-planner/models"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type NearbyPlaceFinder interface {
	GetPlacesNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.Place, error)
}

type PlaceHandler struct {
	places NearbyPlaceFinder
	logger *zap.Logger
}

func NewPlaceHandler(places NearbyPlaceFinder, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{places: places, logger: logger.Named("PlaceHandler")}
}

// GetPlacesNearby handles GET /v1/places/nearby?lat=&lon=&radius= (radius in km)
func (h *PlaceHandler) GetPlacesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	places, err := h.places.GetPlacesNearby(r.Context(), lat, lon, radius)
	if err != nil {
		h.logger.Error("Error loading nearby places", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, CODE_INTERNAL, "Internal server error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, places)
}

func (h *PlaceHandler) parseArgs(vals url.Values, w http.ResponseWriter) (lat, lon, radius float64, ok bool) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, h.logger, http.StatusBadRequest, CODE_INVALID_REQUEST, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, h.logger, http.StatusBadRequest, CODE_INVALID_REQUEST, "Invalid argument "+LON_QUERY_ARG)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil || radius <= 0 {
		writeError(w, h.logger, http.StatusBadRequest, CODE_INVALID_REQUEST, "Invalid argument "+RADIUS_QUERY_ARG)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

// Ping handles GET /ping
func (h *PlaceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "pong"})
}
