package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with all API routes registered. Dependencies
// are passed in explicitly; handlers hold no global state.
func NewRouter(
	log *slog.Logger,
	store EmployeeStore,
	pinger DBPinger,
	mtr *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(requestMetrics(mtr))

	health := NewHealthChecker(pinger, log)
	employees := NewEmployeeHandler(store, mtr, log)

	router.GET("/", employees.Root)
	router.GET("/health", health.Handle)
	router.POST("/employees", employees.Create)
	router.GET("/employees/:id", employees.GetByID)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully. Startup errors other than a normal shutdown are returned.
func Start(ctx context.Context, log *slog.Logger, handler http.Handler, host, port string) error {
	var (
		headerTimeout   = 5 * time.Second
		shutdownTimeout = 10 * time.Second
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           handler,
		ReadHeaderTimeout: headerTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
		return err
	}

	log.InfoContext(ctx, "HTTP server stopped gracefully")
	return nil
}

// requestLogger logs each handled request with method, path, status and latency.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.InfoContext(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// requestMetrics observes request durations into the HTTP histogram. The
// route template (not the raw path) is used so /employees/:id stays one series.
func requestMetrics(mtr *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		mtr.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
