package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"legalai-backend/internal/completion"
	"legalai-backend/internal/config"
	"legalai-backend/internal/legal"
	"legalai-backend/internal/types"
)

// Completer turns a prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, messages []legal.Message, maxTokens int) (string, error)
}

type Server struct {
	router    *chi.Mux
	cfg       config.Config
	prompts   *legal.Prompts
	completer Completer
}

type Option func(*Server)

// WithCompleter replaces the completion client built from the config.
func WithCompleter(c Completer) Option {
	return func(s *Server) {
		s.completer = c
	}
}

func NewServer(cfg config.Config, opts ...Option) (*Server, error) {
	prompts, err := legal.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", CorrelationHeader},
		ExposedHeaders: []string{"Content-Disposition", CorrelationHeader},
		MaxAge:         300,
	}))
	r.Use(correlationID)

	s := &Server{
		router:  r,
		cfg:     cfg,
		prompts: prompts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.completer == nil {
		client, err := completion.NewClient(cfg.HFToken, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create completion client: %w", err)
		}
		s.completer = client
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/generate", s.handleGenerate)
	// Frontend
	s.router.Get("/", s.handleIndex)
	s.router.Get("/img/{filename}", s.handleImage)
	s.router.Get("/*", s.handleSPA)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{OK: true})
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, types.ErrorResponse{Detail: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
