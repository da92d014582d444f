// Package httptransport builds the gin engine every service in the fleet
// shares: one middleware chain, one health/metrics surface, one error
// envelope. Services differ only in the domain routes they register.
package httptransport

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"corebank/internal/domain/auth"
	"corebank/internal/platform/config"
	"corebank/internal/platform/logging"
	"corebank/internal/platform/metrics"
)

// Options configures the HTTP router builder.
type Options struct {
	Config    *config.Config
	Logger    *logging.Logger
	Metrics   *metrics.Registry
	Validator *auth.Validator
	Prober    Prober
}

// Router bundles together the gin engine and common route groups.
type Router struct {
	Engine  *gin.Engine
	Secured *gin.RouterGroup
}

// Build constructs a gin engine pre-configured with request id,
// instrumentation, recovery, logging and CORS middlewares, plus the
// health and metrics endpoints every service exposes.
func Build(opts Options) (*Router, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("http router requires config")
	}
	if opts.Metrics == nil {
		return nil, fmt.Errorf("http router requires a metrics registry")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(logging.Config{Level: "info"})
	}

	if opts.Config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Instrumentation sits outside Recovery so the after-phase observes
	// every exit path, panics included.
	engine.Use(requestIDMiddleware())
	engine.Use(instrumentationMiddleware(opts.Metrics))
	engine.Use(gin.Recovery())
	engine.Use(loggingMiddleware(logger))

	engine.SetTrustedProxies([]string{"0.0.0.0"})

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerHealth(engine, opts)
	engine.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	var secured *gin.RouterGroup
	if opts.Validator != nil {
		secured = engine.Group("")
		secured.Use(AuthMiddleware(opts.Validator, logger))
	}

	return &Router{
		Engine:  engine,
		Secured: secured,
	}, nil
}
