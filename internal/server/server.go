// Package server exposes freshly generated datasets over HTTP for previewing
// the CSV, JSON, GeoJSON and map outputs without writing files.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/geoprofile-cli/internal/citytable"
	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/export"
	"github.com/sells-group/geoprofile-cli/internal/geomap"
	"github.com/sells-group/geoprofile-cli/internal/model"
	"github.com/sells-group/geoprofile-cli/internal/synth"
)

// Config bounds what a single request may generate.
type Config struct {
	DefaultProfiles int
	MaxProfiles     int
	RateLimit       float64 // generation requests per second; 0 disables
	RateBurst       int
}

// Server builds a new dataset per request. Requests share only the
// read-only city table.
type Server struct {
	cities  *citytable.Table
	cfg     Config
	limiter *rate.Limiter
}

// New creates a Server. Zero config values fall back to 100 / 10000, and
// the default count never exceeds the cap.
func New(cities *citytable.Table, cfg Config) *Server {
	if cfg.DefaultProfiles <= 0 {
		cfg.DefaultProfiles = 100
	}
	if cfg.MaxProfiles <= 0 {
		cfg.MaxProfiles = 10000
	}
	if cfg.DefaultProfiles > cfg.MaxProfiles {
		cfg.DefaultProfiles = cfg.MaxProfiles
	}
	s := &Server{cities: cities, cfg: cfg}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/cities", s.handleCities)

	r.Group(func(r chi.Router) {
		r.Use(s.limit)
		r.Get("/profiles.csv", s.handleCSV)
		r.Get("/profiles.json", s.handleJSON)
		r.Get("/profiles.geojson", s.handleGeoJSON)
		r.Get("/map", s.handleMap)
	})

	return r
}

// limit rejects generation requests above the configured rate with 429.
func (s *Server) limit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cities.All())
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	tbl, ok := s.build(w, r)
	if !ok {
		return
	}
	data, err := export.MarshalCSV(tbl.Profiles())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	tbl, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, tbl.Profiles())
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	tbl, ok := s.build(w, r)
	if !ok {
		return
	}
	data, err := export.MarshalGeoJSON(tbl.Profiles())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	tbl, ok := s.build(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := geomap.Write(w, tbl); err != nil {
		zap.L().Error("server: render map", zap.Error(err))
	}
}

// build generates the dataset described by the n and seed query
// parameters. It writes a 400 and returns false on bad input.
func (s *Server) build(w http.ResponseWriter, r *http.Request) (*dataset.Table, bool) {
	n, seed, err := s.parseQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}

	var opts []synth.Option
	if seed != 0 {
		opts = append(opts, synth.WithSeed(seed))
	}
	tbl, err := dataset.Build(r.Context(), synth.New(s.cities, opts...), n, dataset.WithProgress(nil))
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return tbl, true
}

func (s *Server) parseQuery(r *http.Request) (n int, seed uint64, err error) {
	n = s.cfg.DefaultProfiles
	if v := r.URL.Query().Get("n"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, 0, eris.Wrapf(model.ErrInvalidArgument, "n must be a positive integer, got %q", v)
		}
		if n > s.cfg.MaxProfiles {
			return 0, 0, eris.Wrapf(model.ErrInvalidArgument, "n must not exceed %d", s.cfg.MaxProfiles)
		}
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, 0, eris.Wrapf(model.ErrInvalidArgument, "seed must be an unsigned integer, got %q", v)
		}
	}
	return n, seed, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("server: request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
