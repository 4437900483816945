package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/davidleathers/credit-memo-compliance/internal/infrastructure/config"
	"github.com/davidleathers/credit-memo-compliance/internal/ingest"
	"github.com/davidleathers/credit-memo-compliance/internal/metrics"
	"github.com/davidleathers/credit-memo-compliance/internal/service/validation"
)

func main() {
	// Parse flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		recordsPath = flag.String("records", "", "Path to the credit-memo records CSV")
		matrixDir   = flag.String("matrices", "", "Directory holding the approval matrix CSVs")
		outPath     = flag.String("out", "compliance_results.csv", "Path for the augmented results CSV")
	)
	flag.Parse()

	if *recordsPath == "" || *matrixDir == "" {
		log.Fatal("both -records and -matrices are required")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), logger, cfg, *recordsPath, *matrixDir, *outPath); err != nil {
		logger.Fatal("validation run failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, cfg *config.Config, recordsPath, matrixDir, outPath string) error {
	records, err := ingest.LoadRecords(recordsPath)
	if err != nil {
		return err
	}

	matrices, err := ingest.LoadMatrixSet(matrixDir)
	if err != nil {
		return err
	}
	logger.Info("inputs loaded",
		zap.Int("records", len(records)),
		zap.Int("matrix_categories", len(matrices)),
	)

	registry, err := metrics.NewRegistry("credit-memo-compliance")
	if err != nil {
		return err
	}

	svc := validation.NewService(logger, matrices, registry, validation.Config{
		SLADays:              cfg.Engine.SLADays,
		MissingLevelsForHigh: cfg.Engine.MissingLevelsForHigh,
		KeywordsPromotional:  cfg.Engine.KeywordsPromotional,
		KeywordsContract:     cfg.Engine.KeywordsContract,
		Workers:              cfg.Engine.Workers,
	})

	start := time.Now()
	batch, err := svc.ValidateBatch(ctx, records)
	if err != nil {
		return err
	}

	if err := ingest.SaveResults(outPath, batch.Results); err != nil {
		return err
	}

	logger.Info("compliance check complete",
		zap.String("check_id", batch.CheckID.String()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("total", batch.Report.Total),
		zap.Int("compliant", batch.Report.Compliant),
		zap.Int("violations", batch.Report.Violations),
		zap.Int("high_risk", batch.Report.HighRisk),
		zap.Int("over_sla", batch.Report.OverSLA),
		zap.Int("duplicates", batch.Report.Duplicates),
		zap.Int("sod_violations", batch.Report.SoDViolations),
		zap.String("out", outPath),
	)
	return nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
