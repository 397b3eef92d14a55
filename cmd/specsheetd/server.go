package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	specsheet "github.com/oemspec/go-specsheet"
	"github.com/oemspec/go-specsheet/internal/config"
	"github.com/oemspec/go-specsheet/internal/objstore"
	"github.com/oemspec/go-specsheet/internal/specstore"
)

// run wires the stores and the service pool, then serves render
// triggers until interrupted.
func run(configPath, addr string, workers int, logger *zap.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if workers > 0 {
		cfg.Render.Workers = workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	specs, err := specstore.Open(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer specs.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := specs.Ping(pingCtx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	objects, err := objstore.New(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.UseSSL,
	)
	if err != nil {
		return err
	}

	poolSize := specsheet.ResolvePoolSize(cfg.Render.Workers)
	pool := specsheet.NewPool(poolSize, specs, objects,
		specsheet.WithTimeout(cfg.Render.Timeout()),
		specsheet.WithScratchDir(cfg.Render.ScratchDir),
		specsheet.WithLogger(logger),
	)
	defer pool.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/render", renderHandler(pool, logger))
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	logger.Info("worker listening",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("pool_size", poolSize),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// renderRequest mirrors the queue message that triggers one render.
type renderRequest struct {
	SpecificationID string `json:"specification_id" binding:"required"`
	TenantID        string `json:"tenant_id" binding:"required"`
}

func renderHandler(pool *specsheet.Pool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req renderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		svc := pool.Acquire()
		defer pool.Release(svc)

		err := svc.Generate(c.Request.Context(), req.SpecificationID, req.TenantID)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		case errors.Is(err, specsheet.ErrSpecificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "specification not found"})
		case errors.Is(err, specsheet.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("render failed",
				zap.String("specification_id", req.SpecificationID),
				zap.String("tenant_id", req.TenantID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
	}
}
