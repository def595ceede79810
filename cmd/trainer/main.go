// cmd/trainer/main.go
package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"careermatch/internal/common/config"
	"careermatch/internal/common/database"
	"careermatch/internal/common/logger"
	"careermatch/internal/synthetic"
	"careermatch/internal/training"
	"careermatch/internal/training/runstore"
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

	log.Info("starting training run", map[string]interface{}{
		"samplesPerCareer": cfg.Training.SamplesPerCareer,
		"testFraction":     cfg.Training.TestFraction,
		"seed":             cfg.Training.Seed,
		"version":          cfg.Training.Version,
	})

	tables := synthetic.DefaultTables()
	if cfg.Model.ProfileTablePath != "" {
		tables, err = synthetic.LoadTables(cfg.Model.ProfileTablePath)
		if err != nil {
			zapLog.Fatal("failed to load profile tables", zap.Error(err))
		}
		log.Info("loaded profile table override", map[string]interface{}{
			"path": cfg.Model.ProfileTablePath,
		})
	}

	pipeline := training.NewPipeline(
		cfg.Training.SamplesPerCareer,
		cfg.Training.TestFraction,
		cfg.Training.Seed,
		cfg.Training.Version,
		tables,
		log,
	)

	artifact, err := pipeline.Run()
	if err != nil {
		zapLog.Fatal("training run failed", zap.Error(err))
	}

	if err := artifact.Save(cfg.Model.ArtifactPath); err != nil {
		zapLog.Fatal("failed to persist artifact", zap.Error(err))
	}
	log.Info("artifact persisted", map[string]interface{}{
		"path":          cfg.Model.ArtifactPath,
		"trainAccuracy": artifact.Performance.TrainAccuracy,
		"testAccuracy":  artifact.Performance.TestAccuracy,
		"careers":       artifact.Performance.CareerCount,
		"samples":       artifact.Performance.TrainingSamples,
	})

	if cfg.Registry.Enabled {
		if err := recordRun(cfg, artifact.Performance.TrainAccuracy, artifact.Performance.TestAccuracy,
			artifact.Performance.TrainingSamples, artifact.Performance.CareerCount, cfg.Training.Version); err != nil {
			// The artifact is already on disk; registry bookkeeping failure
			// should not fail the run.
			log.Warn("failed to record training run", map[string]interface{}{"error": err})
		}
	}

	os.Exit(0)
}

func recordRun(cfg *config.Config, trainAcc, testAcc float64, samples, careers int, version string) error {
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return err
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		return err
	}

	store := runstore.New(pg.GetDB())
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	_, err = store.Record(ctx, runstore.TrainingRun{
		Version:         version,
		TrainAccuracy:   trainAcc,
		TestAccuracy:    testAcc,
		TrainingSamples: samples,
		CareerCount:     careers,
	})
	return err
}
