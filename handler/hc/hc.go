package hc

import (
	"context"
	"net/http"
	"time"

	"liquidator/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Pinger a dependency the health check probes
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handle handle hc request
func Handle(ver string, deps map[string]Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, deps))
	return r
}

func handle(version string, deps map[string]Pinger) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := render.H{}
		for name, dep := range deps {
			if err := dep.PingContext(ctx); err != nil {
				status = http.StatusServiceUnavailable
				checks[name] = err.Error()
				continue
			}

			checks[name] = "ok"
		}

		uptime := time.Since(b).Truncate(time.Millisecond)
		render.Status(w, status, render.H{
			"uptime":  uptime.String(),
			"version": version,
			"checks":  checks,
		})
	}
}
