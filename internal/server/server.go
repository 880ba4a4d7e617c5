package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/coach"
	"github.com/claude/liftlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *storage.Store
	coach  *coach.Client
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *storage.Store, coachClient *coach.Client, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		coach:  coachClient,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints
		r.Get("/logs", s.handleListLogs)
		r.Get("/logs/volume", s.handleVolumeSeries)
		r.Get("/stats", s.handleStats)
		r.Get("/session", s.handleActiveSession)
		r.Get("/program", s.handleGetProgram)
		r.Get("/program/next", s.handleNextWorkout)
		r.Get("/settings", s.handleGetSettings)
		r.Get("/coach/analysis", s.handleAnalysis)

		// Mutating endpoints and coach questions (API key required): each
		// ask spends external model quota, so it is not left open.
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/coach/ask", s.handleAskCoach)
			r.Post("/logs", s.handleUpsertLog)
			r.Delete("/logs", s.handleDeleteLog)
			r.Post("/session/start", s.handleStartSession)
			r.Post("/session/end", s.handleEndSession)
			r.Put("/program", s.handleSaveProgram)
			r.Put("/settings", s.handleSaveSettings)
		})
	})
}
