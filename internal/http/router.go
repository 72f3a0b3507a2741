package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"menagerie/internal/platform/metrics"
	"menagerie/internal/platform/middleware"
	"menagerie/pkg/platform/httputil"
)

// requestTimeout bounds handler execution for every route.
const requestTimeout = 30 * time.Second

// Registrar mounts a bounded context's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthFunc adapts a function to HealthChecker.
type HealthFunc func(ctx context.Context) error

func (f HealthFunc) Health(ctx context.Context) error { return f(ctx) }

// Deps carries what the router needs beyond the domain handlers.
// Metrics is optional; without it /metrics is not served.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Checks  map[string]HealthChecker
}

// NewRouter wires the shared middleware chain, the operational endpoints
// and every registrar's routes.
func NewRouter(deps Deps, registrars ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(chimw.Timeout(requestTimeout))
	if deps.Metrics != nil {
		r.Use(middleware.Latency(deps.Metrics))
	}

	r.Get("/health", handleHealth)
	r.Get("/ready", readiness(deps.Logger, deps.Checks))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	for _, reg := range registrars {
		reg.Register(r)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readiness pings every dependency and reports 503 when any is down.
func readiness(logger *slog.Logger, checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]string{"status": "ok"}
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				logger.WarnContext(ctx, "dependency unhealthy",
					"dependency", name,
					"error", err,
					"request_id", middleware.GetRequestID(ctx),
				)
				status = http.StatusServiceUnavailable
				body["status"] = "unavailable"
				body[name] = "down"
				continue
			}
			body[name] = "up"
		}
		httputil.WriteJSON(w, status, body)
	}
}
