package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helixd/internal/dna"
	"helixd/internal/hub"
	"helixd/pkg/types"
)

// Service defines the methods the HTTP API layer requires from the
// visualization state owner.
type Service interface {
	Config() types.VisualizationConfig
	ReplaceConfig(cfg types.VisualizationConfig)
	GenerateRandom(length int) (types.Sequence, error)
	ProcessGesture(sample types.GestureSample) types.GestureResult
	AttachViewer(sink hub.Sink)
	DetachViewer(id string)
	ActiveConnections() int
}

// NewMux builds the router with all REST endpoints plus the realtime
// websocket channel.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
		}))
	}
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/dna/random/{length}", func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "length"))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "length must be an integer")
			return
		}
		start := time.Now()
		seq, err := svc.GenerateRandom(n)
		if err != nil {
			if dna.IsInvalidLength(err) {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logInfo(r, func(e logEvent) {
			e.Int("length", n).Dur("dur", time.Since(start)).Msg("sequence generated")
		})
		writeJSON(w, seq)
	})

	r.Post("/dna/validate", func(w http.ResponseWriter, r *http.Request) {
		var req types.ValidateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		report, err := dna.Validate(req.Sequence)
		if err != nil {
			// Empty input is the only hard failure; invalid characters are
			// reported in the 200 body instead.
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, validationResponse(report))
	})

	r.Get("/dna/info/{base}", func(w http.ResponseWriter, r *http.Request) {
		info, err := dna.BaseInfo(chi.URLParam(r, "base"))
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, info)
	})

	r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Config())
	})

	r.Post("/config", func(w http.ResponseWriter, r *http.Request) {
		var cfg types.VisualizationConfig
		if !decodeJSON(w, r, &cfg) {
			return
		}
		svc.ReplaceConfig(cfg)
		logInfo(r, func(e logEvent) { e.Msg("config replaced") })
		writeJSON(w, types.UpdateResponse{Status: "success", Message: "Configuration updated"})
	})

	r.Post("/gesture/process", func(w http.ResponseWriter, r *http.Request) {
		var sample types.GestureSample
		if !decodeJSON(w, r, &sample) {
			return
		}
		result := svc.ProcessGesture(sample)
		logInfo(r, func(e logEvent) {
			e.Str("gesture", result.Gesture.Type).Msg("gesture processed")
		})
		writeJSON(w, result)
	})

	r.Get("/education/dna-facts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, dnaFacts)
	})

	r.Get("/education/molecular-components", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, molecularComponents)
	})

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(svc, w, r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.HealthResponse{
			Status:            "healthy",
			Timestamp:         time.Now().UTC().Format(time.RFC3339Nano),
			ActiveConnections: svc.ActiveConnections(),
		})
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSON enforces the JSON content type and body limit, decoding into
// dst. On failure it writes the client error and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// MaxBytesReader errors land here too; report 400 without size details.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// validationResponse renders a dna.Validation for the wire, splitting the
// valid and invalid shapes the way clients expect.
func validationResponse(v dna.Validation) types.ValidationReport {
	if v.Valid() {
		gc := dna.GCContent(v.Sequence)
		return types.ValidationReport{
			Valid:      true,
			Length:     len(v.Sequence),
			GCContent:  &gc,
			Complement: dna.Complement(v.Sequence),
		}
	}
	letters := make([]string, 0, len(v.Invalid))
	for _, r := range v.Invalid {
		letters = append(letters, string(r))
	}
	return types.ValidationReport{
		Valid:      false,
		Errors:     []string{fmt.Sprintf("Invalid bases found: %s", strings.Join(letters, ", "))},
		ValidBases: []string{"A", "T", "G", "C"},
	}
}
