package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type ItineraryRoutes interface {
	CreateItinerary(w http.ResponseWriter, r *http.Request)
	GetItinerary(w http.ResponseWriter, r *http.Request)
	GetItineraryMap(w http.ResponseWriter, r *http.Request)
}

type PlaceRoutes interface {
	GetPlacesNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	itineraryHandler ItineraryRoutes
	placeHandler     PlaceRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	itineraryHandler ItineraryRoutes,
	placeHandler PlaceRoutes,
	router *mux.Router) *Router {
	return &Router{
		itineraryHandler: itineraryHandler,
		placeHandler:     placeHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/itineraries", r.itineraryHandler.CreateItinerary).Methods("POST")
	r.router.HandleFunc("/v1/itineraries/{id}", r.itineraryHandler.GetItinerary).Methods("GET")
	r.router.HandleFunc("/v1/itineraries/{id}/map", r.itineraryHandler.GetItineraryMap).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius km(float)}
	r.router.HandleFunc("/v1/places/nearby", r.placeHandler.GetPlacesNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.placeHandler.Ping).Methods("GET")
}
