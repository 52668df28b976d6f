// Package api is the thin HTTP surface over the simulation service:
// request decoding, response marshalling, CORS, and request logging. All
// domain logic lives in the resolver and physics packages.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	appconfig "astroshield/config"
	"astroshield/logger"
	"astroshield/models"
	"astroshield/physics"
	"astroshield/resolver"
	"astroshield/writer"
)

const defaultCatalogLimit = 12

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	cfg       *appconfig.Config
	sim       *resolver.Service
	briefings *writer.BriefingWriter
	log       *logger.Log
}

func NewServer(cfg *appconfig.Config, sim *resolver.Service, briefings *writer.BriefingWriter) *Server {
	return &Server{
		cfg:       cfg,
		sim:       sim,
		briefings: briefings,
		log:       logger.GetLogger(),
	}
}

// Router builds the route table with the middleware chain applied.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogging)
	r.Use(corsMiddleware)

	r.HandleFunc("/api/simulate", s.handleSimulate).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/asteroids", s.handleCatalog).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/briefing", s.handleBriefing).Methods(http.MethodPost, http.MethodOptions)

	return r
}

// simulateRequest is the wire shape of a simulation call. Pointer fields
// distinguish absent values from explicit zeros for the coordinates, where
// zero is a legal input.
type simulateRequest struct {
	DiameterM        *float64 `json:"diameter_m"`
	VelocityKMS      *float64 `json:"velocity_kms"`
	DeflectionDeltaV *float64 `json:"deflection_delta_v"`
	ImpactLat        *float64 `json:"impact_lat"`
	ImpactLon        *float64 `json:"impact_lon"`
	AsteroidID       string   `json:"asteroid_id"`
}

func (req *simulateRequest) toModel() models.SimulationRequest {
	out := models.SimulationRequest{AsteroidID: req.AsteroidID}
	if req.DiameterM != nil {
		out.DiameterM = *req.DiameterM
	}
	if req.VelocityKMS != nil {
		out.VelocityKMS = *req.VelocityKMS
	}
	if req.DeflectionDeltaV != nil {
		out.DeflectionDeltaV = *req.DeflectionDeltaV
	}
	if req.ImpactLat != nil {
		out.ImpactLat = *req.ImpactLat
		out.LatProvided = true
	}
	if req.ImpactLon != nil {
		out.ImpactLon = *req.ImpactLon
		out.LonProvided = true
	}
	return out
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.sim.Simulate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, physics.ErrMissingMass) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	limit := defaultCatalogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	entries := s.sim.ListCatalog(r.Context(), limit)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(entries),
		"asteroids": entries,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := s.sim.HealthSnapshot(r.Context())

	status := http.StatusOK
	if snapshot.Status == models.StatusError {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, snapshot)
}

func (s *Server) handleBriefing(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.sim.Simulate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, physics.ErrMissingMass) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}

	briefing, err := s.briefings.Export(r.Context(), resp)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"briefing_id":   briefing.BriefingID,
			"simulation_id": resp.SimulationID,
			"generated_at":  briefing.GeneratedAt,
			"object_keys":   briefing.ObjectKeys,
			"markdown":      string(briefing.Markdown),
		})
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(briefing.Markdown)
	case "tracks":
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="tracks.parquet"`)
		w.WriteHeader(http.StatusOK)
		w.Write(briefing.TrackData)
	default:
		s.writeError(w, http.StatusBadRequest, "format must be json, markdown, or tracks")
	}
}

func (s *Server) decodeSimulateRequest(w http.ResponseWriter, r *http.Request) (models.SimulationRequest, bool) {
	// Unknown keys are ignored so older or extended clients keep working.
	var req simulateRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
			return models.SimulationRequest{}, false
		}
	}
	return req.toModel(), true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithComponent("api").WithError(err).Warn("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
