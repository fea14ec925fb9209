// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the conversion engine over HTTP: callers submit
// text and a conversion type and receive the original and converted text.
// Uploaded content is converted in memory and never stored.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/settle-convert/pkg/types"
)

const requestIDHeader = "X-Request-ID"

// endpoints is reported by the health check.
var endpoints = []string{
	"/api/health",
	"/api/convert",
	"/api/convert/upload",
	"/metrics",
}

// Server is the HTTP server for the conversion API.
type Server struct {
	cfg       types.ServerConfig
	log       *zap.Logger
	validator *requestValidator
	engine    *gin.Engine
}

// New builds a server and registers its routes. Zero-valued config fields
// take the defaults from types.Config.WithDefaults.
func New(cfg types.ServerConfig, log *zap.Logger) (*Server, error) {
	cfg = types.Config{Server: cfg}.WithDefaults().Server
	if log == nil {
		log = zap.NewNop()
	}

	v, err := newRequestValidator(convertRequestSchema)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, log: log, validator: v}
	s.engine = gin.New()
	s.engine.Use(requestID(), accessLog(log), gin.Recovery())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/convert", s.limitBody(), s.handleConvert)
	api.POST("/convert/upload", s.limitBody(), s.handleUpload)

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// limitBody caps the request body at MaxUploadBytes.
func (s *Server) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)
		c.Next()
	}
}

// requestID tags every request and response with a request ID, reusing
// one supplied by the client.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDHeader)),
		)
	}
}
