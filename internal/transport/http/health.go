package httptransport

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/host"
)

// Prober is a lightweight connectivity check against an external store.
// It runs fresh on every health call; results are never cached.
type Prober interface {
	Probe(ctx context.Context) error
}

func registerHealth(engine *gin.Engine, opts Options) {
	handler := healthHandler(opts)
	engine.GET("/health", handler)
	if alias := healthAlias(opts.Config.Service.Name); alias != "" {
		engine.GET(alias, handler)
	}
}

func healthAlias(service string) string {
	switch service {
	case "auth-service":
		return "/auth/health"
	case "account-service":
		return "/accounts/health"
	case "transaction-service":
		return "/transactions/health"
	default:
		return ""
	}
}

// healthHandler reports the service's own status plus a fresh dependency
// probe. A failing probe downgrades dependency_status only; the endpoint
// itself always answers 200 and degradation travels in the body.
func healthHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{
			"service": opts.Config.Service.Name,
			"status":  "healthy",
			"host":    opts.Config.Service.Hostname,
		}

		if opts.Prober != nil {
			dependency := "healthy"
			if err := opts.Prober.Probe(c.Request.Context()); err != nil {
				dependency = "unhealthy"
			}
			payload["dependency_status"] = dependency
		}

		if uptime, err := host.Uptime(); err == nil {
			payload["host_uptime_seconds"] = uptime
		}

		c.JSON(http.StatusOK, payload)
	}
}
