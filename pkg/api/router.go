package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/api/handlers"
	"github.com/marmos91/opendis/pkg/api/stream"
	"github.com/marmos91/opendis/pkg/dis/pdu"
)

// Recorder is the recorder surface served under /sessions.
type Recorder interface {
	handlers.SessionStore
	handlers.Healthchecker
}

// Deps are the components the API reads from. Nil fields disable their
// routes.
type Deps struct {
	Version  string
	Registry *pdu.Registry
	Stats    handlers.StatsSource
	Sender   handlers.SendStatsSource
	Recorder Recorder
	Hub      *stream.Hub
}

// NewRouter builds the chi router.
//
// Routes:
//   - GET /health, GET /health/ready
//   - GET /stats
//   - GET /pdus
//   - GET /sessions, GET /sessions/{id}, DELETE /sessions/{id}
//   - GET /stream (websocket)
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// The live feed is long-lived and must stay outside the timeout.
	if deps.Hub != nil {
		r.Get("/stream", deps.Hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		health := handlers.NewHealthHandler(deps.Recorder, deps.Version)
		r.Route("/health", func(r chi.Router) {
			r.Get("/", health.Liveness)
			r.Get("/ready", health.Readiness)
		})

		var counter handlers.TypeCounter
		if deps.Hub != nil {
			counter = deps.Hub
		}
		r.Get("/stats", handlers.NewStatsHandler(deps.Stats, deps.Sender, counter).Get)
		r.Get("/pdus", handlers.NewKindsHandler(deps.Registry).List)

		if deps.Recorder != nil {
			sessions := handlers.NewSessionHandler(deps.Recorder)
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", sessions.List)
				r.Get("/{id}", sessions.Get)
				r.Delete("/{id}", sessions.Delete)
			})
		}
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			logger.Method(r.Method),
			logger.Route(r.URL.Path),
			logger.Peer(r.RemoteAddr),
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.Info("API request completed",
			"request_id", requestID,
			logger.Method(r.Method),
			logger.Route(r.URL.Path),
			logger.Status(ww.Status()),
			logger.Bytes(ww.BytesWritten()),
			logger.DurationMs(start),
		)
	})
}
