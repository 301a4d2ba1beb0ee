// Package api provides the HTTP front door: submission, polling, and
// health endpoints over gin. Authentication and the frontend are
// external collaborators; this layer only validates, dispatches, and
// serializes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/database"
	"github.com/cityworks/cityagent/pkg/jobmanager"
	"github.com/cityworks/cityagent/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	engine      *gin.Engine
	httpServer  *http.Server
	coordinator *coordinator.Service
	jobs        *jobmanager.Manager
	dbClient    *database.Client // nil when running without Postgres
}

// NewServer creates the API server and registers all routes.
func NewServer(coord *coordinator.Service, jobs *jobmanager.Manager, dbClient *database.Client) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:      engine,
		coordinator: coord,
		jobs:        jobs,
		dbClient:    dbClient,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	v1 := s.engine.Group("/api/v1")
	v1.POST("/query", s.submitQuery)
	v1.GET("/query/:id", s.getQuery)
	v1.GET("/query/:id/result", s.getQueryResult)
	v1.GET("/health", s.health)

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the HTTP server on addr (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// health handles GET /api/v1/health. The service reports degraded —
// never an HTTP failure — when its database is unreachable, because
// submissions can still run with in-memory stores.
func (s *Server) health(c *gin.Context) {
	resp := HealthResponse{
		Status:      "healthy",
		Coordinator: "up",
		Version:     version.Full(),
	}

	if s.dbClient != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		dbHealth, err := s.dbClient.Health(ctx)
		if err != nil {
			resp.Status = "degraded"
		}
		resp.Database = dbHealth
	}

	c.JSON(http.StatusOK, resp)
}
