package handlers

import (
	"context"
	"net/http"
	"time"
)

// Healthchecker is implemented by components the readiness probe checks.
type Healthchecker interface {
	Healthcheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	recorder  Healthchecker
	version   string
	startedAt time.Time
}

// NewHealthHandler returns a HealthHandler. recorder may be nil when
// recording is disabled; readiness then only reports the process is up.
func NewHealthHandler(recorder Healthchecker, version string) *HealthHandler {
	return &HealthHandler{recorder: recorder, version: version, startedAt: time.Now()}
}

// LivenessData is the body of a successful liveness probe.
type LivenessData struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
	UptimeSec int64     `json:"uptime_sec"`
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startedAt).Round(time.Second)
	writeJSON(w, http.StatusOK, healthyResponse(LivenessData{
		Service:   "opendis",
		Version:   h.version,
		StartedAt: h.startedAt.UTC(),
		Uptime:    uptime.String(),
		UptimeSec: int64(uptime.Seconds()),
	}))
}

// ComponentHealth is the readiness state of one component.
type ComponentHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	components := []ComponentHealth{{Name: "transport", Status: "healthy"}}

	if h.recorder != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		start := time.Now()
		err := h.recorder.Healthcheck(ctx)
		c := ComponentHealth{Name: "recorder", Status: "healthy", Latency: time.Since(start).String()}
		if err != nil {
			c.Status = "unhealthy"
			c.Error = err.Error()
			components = append(components, c)
			writeJSON(w, http.StatusServiceUnavailable, Response{
				Status:    "unhealthy",
				Timestamp: time.Now().UTC(),
				Data:      components,
				Error:     "recorder unavailable",
			})
			return
		}
		components = append(components, c)
	}

	writeJSON(w, http.StatusOK, healthyResponse(components))
}
