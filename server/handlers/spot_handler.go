package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"sm-server/models"
	services "sm-server/service"
)

const (
	LAT_QUERY_ARG       = "lat"
	LON_QUERY_ARG       = "lon"
	RADIUS_QUERY_ARG    = "radius"
	AREA_QUERY_ARG      = "area"
	ACTIVITY_QUERY_ARG  = "activity"
	TEXT_QUERY_ARG      = "q"
	FAVORITES_QUERY_ARG = "favorites"
	SORT_QUERY_ARG      = "sort"
	ID_PATH_ARG         = "id"
)

type SpotHandler struct {
	spotService *services.SpotService
	areas       *models.AreaCatalog
}

func NewSpotHandler(spotService *services.SpotService, areas *models.AreaCatalog) *SpotHandler {
	return &SpotHandler{
		spotService: spotService,
		areas:       areas,
	}
}

// GetSpots handles GET /v1/spots
func (h *SpotHandler) GetSpots(w http.ResponseWriter, r *http.Request) {
	// 1) Parse filter criteria from query args
	criteria, ok := h.parseCriteria(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Run the pipeline
	rows, err := h.spotService.ListSpots(criteria)
	if err != nil {
		log.Println("Error listing spots:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Write JSON
	writeJSON(w, http.StatusOK, rows)
}

// GetVenuesNearby handles GET /v1/venues/nearby
func (h *SpotHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lng, radius, ok := h.parseGeoArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed venues with status
	results, err := h.spotService.SearchVenuesNearby(lat, lng, radius)
	if err != nil {
		log.Println("Error searching venues nearby:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Write JSON
	writeJSON(w, http.StatusOK, results)
}

// SubmitSpot handles POST /v1/spots
func (h *SpotHandler) SubmitSpot(w http.ResponseWriter, r *http.Request) {
	var sub models.SpotSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid submission body", http.StatusBadRequest)
		return
	}

	spot, err := h.spotService.SubmitSpot(sub)
	if err != nil {
		log.Println("Rejecting submission:", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, spot)
}

// ApproveSpot handles POST /v1/spots/{id}/approve
func (h *SpotHandler) ApproveSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDArg(r, w)
	if !ok {
		return
	}

	spot, err := h.spotService.ApproveSpot(id)
	if err != nil {
		log.Println("Error approving spot:", err)
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, spot)
}

// GetSpotDetail handles GET /v1/spots/{id}
func (h *SpotHandler) GetSpotDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDArg(r, w)
	if !ok {
		return
	}

	detail, err := h.spotService.GetSpotDetail(id)
	if err != nil {
		log.Println("Error loading spot detail:", err)
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// RejectSpot handles DELETE /v1/spots/{id}
func (h *SpotHandler) RejectSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDArg(r, w)
	if !ok {
		return
	}

	if err := h.spotService.RejectSpot(id); err != nil {
		log.Println("Error rejecting spot:", err)
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFavorite handles POST /v1/spots/{id}/favorite
func (h *SpotHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDArg(r, w)
	if !ok {
		return
	}

	if err := h.spotService.AddFavorite(id); err != nil {
		log.Println("Error adding favorite:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /v1/spots/{id}/favorite
func (h *SpotHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDArg(r, w)
	if !ok {
		return
	}

	if err := h.spotService.RemoveFavorite(id); err != nil {
		log.Println("Error removing favorite:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAreas handles GET /v1/areas. The client uses the centers to
// recenter the map when an area filter is picked.
func (h *SpotHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	names := h.areas.Names()
	areas := make([]models.Area, 0, len(names))
	for _, name := range names {
		if a, found := h.areas.Get(name); found {
			areas = append(areas, a)
		}
	}
	writeJSON(w, http.StatusOK, areas)
}

// Ping handles GET /ping
func (h *SpotHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// parseCriteria builds the filter criteria from query args. Area,
// activity, text and sort pass through as-is; the user location needs
// lat and lon together or not at all.
func (h *SpotHandler) parseCriteria(vals url.Values, w http.ResponseWriter) (models.FilterCriteria, bool) {
	criteria := models.FilterCriteria{
		Area:         vals.Get(AREA_QUERY_ARG),
		ActivityType: vals.Get(ACTIVITY_QUERY_ARG),
		TextQuery:    vals.Get(TEXT_QUERY_ARG),
		SortMode:     models.SortMode(vals.Get(SORT_QUERY_ARG)),
	}
	if v := vals.Get(FAVORITES_QUERY_ARG); v != "" {
		criteria.FavoritesOnly, _ = strconv.ParseBool(v)
	}

	latStr := vals.Get(LAT_QUERY_ARG)
	lonStr := vals.Get(LON_QUERY_ARG)
	if latStr == "" && lonStr == "" {
		return criteria, true
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return criteria, false
	}
	lng, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return criteria, false
	}
	criteria.UserLocation = &models.Coordinates{Lat: lat, Lng: lng}
	return criteria, true
}

func (h *SpotHandler) parseGeoArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil || radius <= 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (h *SpotHandler) parseIDArg(r *http.Request, w http.ResponseWriter) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[ID_PATH_ARG])
	if err != nil {
		http.Error(w, "Invalid argument "+ID_PATH_ARG, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
