package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SpotRoutes is the handler surface the router wires up. Implemented
// by handlers.SpotHandler; tests swap in a mock.
type SpotRoutes interface {
	GetSpots(w http.ResponseWriter, r *http.Request)
	GetSpotDetail(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	SubmitSpot(w http.ResponseWriter, r *http.Request)
	ApproveSpot(w http.ResponseWriter, r *http.Request)
	RejectSpot(w http.ResponseWriter, r *http.Request)
	AddFavorite(w http.ResponseWriter, r *http.Request)
	RemoveFavorite(w http.ResponseWriter, r *http.Request)
	GetAreas(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	spotHandler SpotRoutes
	router      *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	spotHandler SpotRoutes,
	router *mux.Router) *Router {
	return &Router{
		spotHandler: spotHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?area=&activity=&q=&favorites=&sort=&lat={latitude(float)}&lon={longitude(float)}
	r.router.HandleFunc("/v1/spots", r.spotHandler.GetSpots).Methods("GET")
	r.router.HandleFunc("/v1/spots", r.spotHandler.SubmitSpot).Methods("POST")
	r.router.HandleFunc("/v1/spots/{id}", r.spotHandler.GetSpotDetail).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.spotHandler.GetVenuesNearby).Methods("GET")

	r.router.HandleFunc("/v1/spots/{id}/approve", r.spotHandler.ApproveSpot).Methods("POST")
	r.router.HandleFunc("/v1/spots/{id}", r.spotHandler.RejectSpot).Methods("DELETE")
	r.router.HandleFunc("/v1/spots/{id}/favorite", r.spotHandler.AddFavorite).Methods("POST")
	r.router.HandleFunc("/v1/spots/{id}/favorite", r.spotHandler.RemoveFavorite).Methods("DELETE")

	r.router.HandleFunc("/v1/areas", r.spotHandler.GetAreas).Methods("GET")

	r.router.HandleFunc("/ping", r.spotHandler.Ping).Methods("GET")
}
