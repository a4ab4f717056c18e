package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// Version is set at build time via -ldflags. Defaults to "0.1.0".
var Version = "0.1.0"

// ServiceStatus represents the health of a single backing service.
type ServiceStatus struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse is the JSON body returned by the health endpoint.
type HealthResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Services map[string]ServiceStatus `json:"services"`
}

// PingFunc is the signature for a function that checks connectivity to a
// backing service. It should return nil when the service is reachable.
type PingFunc func(ctx context.Context) error

// HealthHandler implements GET /health. The control plane itself has no
// external dependency -- the registry is in-memory -- so every service
// checked here is one of the optional domain-stack integrations (status
// cache, archival mirror, search index, audit sink). None of them are
// critical: the handler always reports 200, the per-service detail is
// diagnostic only.
type HealthHandler struct {
	pings map[string]PingFunc
}

// NewHealthHandler creates a HealthHandler with ping functions for each
// optional backing service. Any ping function may be nil, in which case
// that service is reported as "not_configured".
func NewHealthHandler(redisPing, s3Ping, blevePing, natsPing PingFunc) *HealthHandler {
	pings := make(map[string]PingFunc)
	if redisPing != nil {
		pings["status_cache"] = redisPing
	}
	if s3Ping != nil {
		pings["archival_mirror"] = s3Ping
	}
	if blevePing != nil {
		pings["search_index"] = blevePing
	}
	if natsPing != nil {
		pings["audit_sink"] = natsPing
	}
	return &HealthHandler{pings: pings}
}

// ServeHTTP pings every configured optional integration concurrently and
// always responds 200; none of them gate the control plane's own health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	services := make(map[string]ServiceStatus)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, ping := range h.pings {
		wg.Add(1)
		go func(name string, ping PingFunc) {
			defer wg.Done()

			start := time.Now()
			err := ping(ctx)
			latency := time.Since(start).Milliseconds()

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				services[name] = ServiceStatus{
					Status:    "unhealthy",
					LatencyMS: latency,
					Error:     err.Error(),
				}
			} else {
				services[name] = ServiceStatus{
					Status:    "healthy",
					LatencyMS: latency,
				}
			}
		}(name, ping)
	}

	wg.Wait()

	for _, expected := range []string{"status_cache", "archival_mirror", "search_index", "audit_sink"} {
		if _, ok := services[expected]; !ok {
			services[expected] = ServiceStatus{Status: "not_configured"}
		}
	}

	resp := HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	}

	api.JSON(w, http.StatusOK, resp)
}
