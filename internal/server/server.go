package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/invoicepilot/internal/config"
	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
	"github.com/smallbiznis/invoicepilot/internal/invoice/render"
	issuerdomain "github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	"github.com/smallbiznis/invoicepilot/internal/observability/logger"
	"github.com/smallbiznis/invoicepilot/internal/observability/metrics"
	"github.com/smallbiznis/invoicepilot/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server holds HTTP handler dependencies.
type Server struct {
	cfg        config.Config
	log        *zap.Logger
	db         *gorm.DB
	invoiceSvc invoicedomain.Service
	issuerSvc  issuerdomain.Service
	renderer   *render.Renderer
	renderRL   *rateLimiter
}

// NewServer builds the HTTP server.
func NewServer(
	cfg config.Config,
	log *zap.Logger,
	db *gorm.DB,
	invoiceSvc invoicedomain.Service,
	issuerSvc issuerdomain.Service,
	renderer *render.Renderer,
) *Server {
	return &Server{
		cfg:        cfg,
		log:        log,
		db:         db,
		invoiceSvc: invoiceSvc,
		issuerSvc:  issuerSvc,
		renderer:   renderer,
		renderRL:   newRateLimiter(30, time.Minute),
	}
}

// NewEngine creates the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *metrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(tracing.GinMiddleware(cfg.ServiceName))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	engine.Use(logger.GinMiddleware(log))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return engine
}

// RegisterRoutes mounts the versioned API.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	v1 := engine.Group("/v1")
	v1.GET("/templates", s.ListTemplates)
	v1.GET("/invoices/:id", s.GetInvoice)
	v1.GET("/invoices/:id/pdf", s.renderRateLimit(), s.DownloadInvoicePDF)
	v1.GET("/issuer", s.GetIssuerProfile)
	v1.PUT("/issuer/branding", s.UpdateIssuerBranding)
}

func (s *Server) renderRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.renderRL.Allow(c.ClientIP()) {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server, engine *gin.Engine) {
		s.RegisterRoutes(engine)
	}),
	fx.Invoke(RunHTTP),
)
