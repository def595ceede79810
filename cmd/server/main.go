// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"careermatch/internal/common/config"
	"careermatch/internal/common/database"
	"careermatch/internal/common/logger"
	"careermatch/internal/common/metrics"
	"careermatch/internal/model"
	"careermatch/internal/predictor"
	"careermatch/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting inference service", map[string]interface{}{
		"port":         cfg.Server.Port,
		"artifactPath": cfg.Model.ArtifactPath,
	})

	// A missing artifact is not fatal for the process: the service comes up,
	// reports model_loaded=false on /health and fails predictions fast.
	artifact, err := model.LoadArtifact(cfg.Model.ArtifactPath)
	if err != nil {
		log.Error("failed to load model artifact, serving in degraded mode", map[string]interface{}{
			"path":  cfg.Model.ArtifactPath,
			"error": err,
		})
		artifact = nil
		metrics.ModelLoaded.Set(0)
	} else {
		metrics.ModelLoaded.Set(1)
		log.Info("model artifact loaded", map[string]interface{}{
			"version":  artifact.Version,
			"careers":  len(artifact.Careers),
			"features": len(artifact.FeatureNames),
			"accuracy": artifact.Performance.TestAccuracy,
		})
	}

	var opts []predictor.Option
	if cfg.Cache.Enabled {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("failed to create redis client", zap.Error(err))
		}
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx); err != nil {
			log.Warn("redis unreachable, serving without prediction cache", map[string]interface{}{
				"error": err,
			})
		} else {
			opts = append(opts, predictor.WithCache(rdb.GetClient(), time.Duration(cfg.Cache.TTL)*time.Second))
		}
		cancel()
	}

	svc := predictor.New(artifact, log, opts...)
	srv := server.New(svc, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("http server failed", zap.Error(err))
	case sig := <-stop:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]interface{}{"error": err})
	}
}
