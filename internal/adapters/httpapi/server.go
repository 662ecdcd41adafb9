// Package httpapi exposes route resolution over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// Service is the application surface served over HTTP.
type Service interface {
	Resolve(ctx context.Context, origin, destination string) (domain.Resolution, error)
	Nodes(ctx context.Context) ([]domain.Node, error)
	Stats(ctx context.Context, top int) (domain.Stats, error)
	Ping(ctx context.Context) error
}

// RequestMetrics records served requests and exposes them for scraping.
type RequestMetrics interface {
	ObserveRequest(method, path string, status int, d time.Duration)
	Handler() http.Handler
}

// Options configures a Server.
type Options struct {
	// RateLimit is the sustained number of route requests per second. Zero disables limiting.
	RateLimit float64
	// Burst is the number of route requests allowed above RateLimit at once.
	Burst int
	// Metrics, when set, records every request and serves GET /metrics.
	Metrics RequestMetrics
	// ServiceName labels the server spans.
	ServiceName string
}

// Server is the HTTP host for a Service.
type Server struct {
	svc    Service
	logger ports.Logger
	engine *gin.Engine
}

// NewServer builds the route table for svc.
func NewServer(svc Service, log ports.Logger, opts Options) *Server {
	if opts.ServiceName == "" {
		opts.ServiceName = "tide"
	}

	s := &Server{svc: svc, logger: log, engine: gin.New()}

	s.engine.Use(gin.Recovery(), requestID())
	s.engine.Use(otelgin.Middleware(opts.ServiceName))
	if opts.Metrics != nil {
		s.engine.Use(observe(opts.Metrics))
		s.engine.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	s.engine.GET("/healthz", s.handleHealth)

	v1 := s.engine.Group("/v1")
	v1.GET("/routes", limit(opts.RateLimit, opts.Burst), s.handleRoute)
	v1.GET("/nodes", s.handleNodes)
	v1.GET("/stats", s.handleStats)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening on " + ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "http server shutdown failed")
	}
	return nil
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuidString()
		}
		c.Header(headerRequestID, id)
		c.Set(headerRequestID, id)
		c.Next()
	}
}

func observe(m RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func limit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
