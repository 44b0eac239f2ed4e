// Package scanhttp exposes the scan pipeline and its history over HTTP.
package scanhttp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tradefit/internal/logger"
	"tradefit/internal/scan"

	"github.com/gin-gonic/gin"
)

const serviceName = "tradefit"

// ScanAPI is what the HTTP layer needs from the orchestrator.
type ScanAPI interface {
	Perform(ctx context.Context, in scan.Input) (scan.Record, error)
	List(ctx context.Context, opts scan.ListOptions) ([]scan.Record, error)
	Get(ctx context.Context, id string) (scan.Record, error)
}

type Server struct {
	addr   string
	router *gin.Engine
}

type ServerConfig struct {
	Addr    string
	Scans   ScanAPI
	Version string
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Scans == nil {
		return nil, errors.New("scan http server requires a scan service")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	h := &handlers{scans: cfg.Scans, version: cfg.Version}
	router.GET("/", h.root)
	router.GET("/health", h.liveness)
	router.POST("/scan", h.createScan)
	router.GET("/scans", h.listScans)
	router.GET("/scans/:id", h.getScan)

	return &Server{addr: cfg.Addr, router: router}, nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.addr
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}
		c.Next()
		logger.Debugf("HTTP %s %s status=%d ip=%s dur=%s",
			method, path, c.Writer.Status(), c.ClientIP(), time.Since(start))
	}
}
