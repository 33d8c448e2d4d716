package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"trip-planner/models"
	"trip-planner/util"
)

const ID_PATH_VAR = "id"

// MAX_REQUEST_BODY_BYTES bounds a plan request body.
const MAX_REQUEST_BODY_BYTES = 1 << 20

type ItineraryBuilder interface {
	BuildItinerary(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error)
}

type ItineraryStore interface {
	SaveItinerary(ctx context.Context, it *models.Itinerary) error
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)
}

type PlaceIndexer interface {
	IndexItinerary(ctx context.Context, it *models.Itinerary) int
}

type ItineraryHandler struct {
	builder ItineraryBuilder
	store   ItineraryStore
	indexer PlaceIndexer
	logger  *zap.Logger
}

func NewItineraryHandler(builder ItineraryBuilder, store ItineraryStore, indexer PlaceIndexer, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		builder: builder,
		store:   store,
		indexer: indexer,
		logger:  logger.Named("ItineraryHandler"),
	}
}

// CreateItinerary handles POST /v1/itineraries
func (h *ItineraryHandler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_REQUEST_BODY_BYTES))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, CODE_INVALID_REQUEST, "Request body must be a JSON plan request")
		return
	}

	it, err := h.builder.BuildItinerary(r.Context(), req)
	if err != nil {
		if failure, ok := models.AsFailure(err); ok {
			writeJSON(w, h.logger, http.StatusBadRequest, failure)
			return
		}
		h.logger.Error("Error building itinerary", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, CODE_INTERNAL, "Internal server error")
		return
	}

	// the plan is returned even when it cannot be stored
	if err := h.store.SaveItinerary(r.Context(), it); err != nil {
		h.logger.Warn("Error saving itinerary", zap.String("id", it.ID), zap.Error(err))
	}
	if h.indexer != nil {
		h.indexer.IndexItinerary(r.Context(), it)
	}

	writeJSON(w, h.logger, http.StatusOK, it)
}

// GetItinerary handles GET /v1/itineraries/{id}
func (h *ItineraryHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, it)
}

// GetItineraryMap handles GET /v1/itineraries/{id}/map
func (h *ItineraryHandler) GetItineraryMap(w http.ResponseWriter, r *http.Request) {
	it, ok := h.load(w, r)
	if !ok {
		return
	}

	var page bytes.Buffer
	if err := util.RenderRouteMap(&page, it); err != nil {
		h.logger.Error("Error rendering route map", zap.String("id", it.ID), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, CODE_INTERNAL, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := page.WriteTo(w); err != nil {
		h.logger.Warn("Error writing route map", zap.Error(err))
	}
}

func (h *ItineraryHandler) load(w http.ResponseWriter, r *http.Request) (*models.Itinerary, bool) {
	id := mux.Vars(r)[ID_PATH_VAR]
	it, err := h.store.GetItinerary(r.Context(), id)
	if err != nil {
		h.logger.Error("Error loading itinerary", zap.String("id", id), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, CODE_INTERNAL, "Internal server error")
		return nil, false
	}
	if it == nil {
		writeError(w, h.logger, http.StatusNotFound, CODE_NOT_FOUND, "Itinerary not found")
		return nil, false
	}
	return it, true
}
