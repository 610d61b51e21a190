// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"foodi/internal/app"
	"foodi/internal/domain"
)

const maxBodyBytes = 1 << 20

type Handlers struct {
	Q *app.QueryService
	R *app.ReportService
	C *app.CatalogService
}

type problem struct {
	Type   string           `json:"type"`
	Title  string           `json:"title"`
	Status int              `json:"status"`
	Detail string           `json:"detail,omitempty"`
	Errors []app.FieldError `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/restaurants", h.listRestaurants)
	s.mux.Get("/v1/cuisines", h.listCuisines)
	s.mux.Get("/v1/predictions", h.listPredictions)
	s.mux.Get("/v1/nearby", h.nearby)
	s.mux.Post("/v1/reports", h.submitReport)
	s.mux.Post("/v1/admin/restaurants", h.addRestaurant)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		writeProblemBody(w, problem{
			Type: "about:blank", Title: "Invalid input", Status: http.StatusBadRequest,
			Detail: verr.Error(), Errors: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "restaurant not found")
	case errors.Is(err, domain.ErrRestaurantRequired):
		writeProblem(w, http.StatusBadRequest, "Restaurant required", "choose a restaurant or enter its name")
	case errors.Is(err, domain.ErrDuplicateName):
		writeProblem(w, http.StatusConflict, "Conflict", "a restaurant with this name already exists")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Q.Restaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rs == nil {
		rs = []domain.Restaurant{}
	}

	etag, body := calcETagAndBody(rs)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listRestaurants body")
	}
}

func (h *Handlers) listCuisines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"cuisines": domain.CanonicalTypes()})
}

func (h *Handlers) listPredictions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.AllWithPredictions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Prediction{"results": out})
}

// nearby never fails on a bad location: the view reports it instead.
func (h *Handlers) nearby(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	var q *domain.Coords
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(qs.Get("lat")), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(qs.Get("lon")), 64)
	if errLat == nil && errLon == nil {
		q = &domain.Coords{Lat: lat, Lon: lon}
	}

	view, err := h.Q.FindNearby(r.Context(), q, qs.Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) submitReport(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeReport(w, r)
	if !ok {
		return
	}
	res, err := h.R.Submit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// decodeReport accepts a JSON body or a classic form post.
func decodeReport(w http.ResponseWriter, r *http.Request) (domain.SubmitReport, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var in domain.SubmitReport

	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid body", "restaurant_id and wait_minutes must be integers")
			return in, false
		}
		return in, true
	}

	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "could not parse form")
		return in, false
	}
	if s := strings.TrimSpace(r.PostForm.Get("restaurant_id")); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid restaurant_id", "restaurant_id must be an integer")
			return in, false
		}
		in.RestaurantID = &id
	}
	in.RestaurantName = r.PostForm.Get("restaurant_name")
	if s := strings.TrimSpace(r.PostForm.Get("wait_minutes")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid wait_minutes", "wait_minutes must be an integer")
			return in, false
		}
		in.WaitMinutes = &n
	}
	return in, true
}

func (h *Handlers) addRestaurant(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var in domain.NewRestaurant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected a JSON restaurant")
		return
	}
	res, err := h.C.AddRestaurant(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
