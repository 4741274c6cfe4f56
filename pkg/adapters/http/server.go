package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/internal/logging"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes caps the size of a map accepted by POST /walk.
const DefaultMaxBodyBytes = 1 << 20

// WalkRequest is the JSON body of POST /walk.
type WalkRequest struct {
	Map   string `json:"map"`
	Trace bool   `json:"trace,omitempty"`
}

// ErrorResponse is returned for 4xx/5xx replies.
type ErrorResponse struct {
	Error  string         `json:"error"`
	Result *domain.Result `json:"result,omitempty"`
}

// Server exposes an engine over HTTP.
type Server struct {
	Engine       ports.Walker
	Logger       *slog.Logger
	Metrics      http.Handler
	MaxBodyBytes int64
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.MaxBodyBytes = n
	}
}

// NewHandler creates a new HTTP handler for the engine.
// The engine should keep traces (asciiwalk.WithTrace) if clients may ask for them.
func NewHandler(engine ports.Walker, opts ...Option) (http.Handler, error) {
	server := &Server{
		Engine:       engine,
		Logger:       logging.NewNop(),
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}

	// Fail early if the embedded contract is broken.
	if _, err := LoadSpec(context.Background()); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/walk", server.Walk)
	r.Get("/healthz", server.Health)
	r.Get("/version", server.Version)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Walk handles the POST /walk request.
// JSON bodies carry the map in the "map" field; any other content type is
// taken as the raw map text.
func (s *Server) Walk(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)

	req, err := decodeWalkRequest(r.Header.Get("Content-Type"), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "map too large"})
			return
		}
		s.Logger.Warn("Walk: Invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := s.Engine.Walk(r.Context(), req.Map)
	if res != nil && !req.Trace {
		res.Trace = nil
	}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, domain.ErrStartNotFound), errors.Is(err, domain.ErrStepLimitExceeded):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Result: res})
	default:
		s.Logger.Error("Walk failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("walk error: %v", err)})
	}
}

func decodeWalkRequest(contentType string, body io.Reader) (WalkRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/json" {
		var req WalkRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return WalkRequest{}, err
		}
		return req, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return WalkRequest{}, err
	}
	return WalkRequest{Map: string(data)}, nil
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /version.
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": strings.TrimSpace(asciiwalk.Version)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
