package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prayerhub_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AuthFailures counts rejected authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prayerhub_auth_failures_total",
		Help: "Total number of failed authentication attempts by reason",
	}, []string{"reason"})

	// Intercessions counts successful intercede operations.
	Intercessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayerhub_intercessions_total",
		Help: "Total number of recorded intercessions",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records per-request metrics.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
