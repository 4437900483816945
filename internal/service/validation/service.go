package validation

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/matrix"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
	"github.com/davidleathers/credit-memo-compliance/internal/metrics"
)

// Engine defaults
const (
	DefaultSLADays              = 5
	DefaultMissingLevelsForHigh = 2
)

// Config holds the engine's tuning knobs
type Config struct {
	// SLADays is the business-day threshold for an on-time approval
	SLADays int
	// MissingLevelsForHigh is the minimum count of missing approval
	// levels that elevates a level-shortfall violation to High risk
	MissingLevelsForHigh int
	// Keyword sets for reason classification; empty lists fall back to
	// the defaults
	KeywordsPromotional []string
	KeywordsContract    []string
	// Workers bounds per-record parallelism; 0 means GOMAXPROCS
	Workers int
}

func (c Config) withDefaults() Config {
	if c.SLADays <= 0 {
		c.SLADays = DefaultSLADays
	}
	if c.MissingLevelsForHigh <= 0 {
		c.MissingLevelsForHigh = DefaultMissingLevelsForHigh
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Service runs the credit-memo SOX validation pipeline over record
// batches. The matrix set is shared and immutable, so records are
// evaluated in parallel with no locking; only the duplicate pass looks at
// the whole set, and it completes before any record is evaluated.
type Service struct {
	logger     *zap.Logger
	matrices   matrix.Set
	registry   *metrics.Registry
	classifier ReasonClassifier
	approvals  approvalEvaluator
	timeline   timelineEvaluator
	workers    int
}

// NewService creates a validation service. The registry may be nil when
// metrics are not wired up.
func NewService(logger *zap.Logger, matrices matrix.Set, registry *metrics.Registry, cfg Config) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		logger:     logger.Named("validation"),
		matrices:   matrices,
		registry:   registry,
		classifier: NewReasonClassifier(cfg.KeywordsPromotional, cfg.KeywordsContract),
		approvals:  approvalEvaluator{missingLevelsForHigh: cfg.MissingLevelsForHigh},
		timeline:   timelineEvaluator{slaDays: cfg.SLADays},
		workers:    cfg.Workers,
	}
}

// BatchResult is the outcome of one validation run
type BatchResult struct {
	CheckID   uuid.UUID
	Timestamp time.Time
	Results   []memo.Result
	Report    Report
}

// Report aggregates verdict totals for a batch
type Report struct {
	Total         int
	Compliant     int
	Violations    int
	HighRisk      int
	MediumRisk    int
	OverSLA       int
	Duplicates    int
	SoDViolations int
}

// ValidateBatch runs the duplicate pass, evaluates every record, and
// aggregates the batch report. Records are mutually independent, so the
// only error paths are context cancellation between evaluations.
func (s *Service) ValidateBatch(ctx context.Context, records []memo.Record) (*BatchResult, error) {
	start := time.Now()

	duplicates := markDuplicates(records)
	results := make([]memo.Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range records {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = memo.Result{
				Record:  records[i],
				Outcome: s.validateRecord(records[i], duplicates[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := buildReport(results)
	s.recordMetrics(ctx, results, start)

	s.logger.Info("validation batch complete",
		zap.Int("records", report.Total),
		zap.Int("compliant", report.Compliant),
		zap.Int("violations", report.Violations),
		zap.Int("high_risk", report.HighRisk),
		zap.Int("over_sla", report.OverSLA),
		zap.Duration("duration", time.Since(start)),
	)

	return &BatchResult{
		CheckID:   uuid.New(),
		Timestamp: time.Now(),
		Results:   results,
		Report:    report,
	}, nil
}

// validateRecord is the per-record pipeline: classify reason, resolve the
// required and approver levels, evaluate approval compliance, finalize
// through the timeline check, then aggregate violations and run the SoD
// check. The duplicate flag comes from the whole-set pass.
func (s *Service) validateRecord(rec memo.Record, duplicate bool) memo.Outcome {
	out := memo.Outcome{
		FinalApprover: rec.ApproverDesignation,
		DuplicateMemo: memo.DuplicateNo,
	}
	if duplicate {
		out.DuplicateMemo = memo.DuplicateYes
	}

	out.ReasonClass = s.classifier.Classify(rec.Reason)

	mtx, haveMatrix := s.matrices.ForCategory(out.ReasonClass.MatrixKey())

	resolution := matrix.Unresolved()
	if haveMatrix {
		if level, ok := mtx.RequiredLevel(rec.Amount); ok {
			out.RequiredLevel = &level
		}
		resolution = mtx.ResolveDesignation(rec.ApproverDesignation)
	}
	if level, ok := resolution.Level(); ok {
		out.ApproverLevel = &level
	}

	approval := s.approvals.Evaluate(out.RequiredLevel, resolution, rec.ApproverDesignation)
	final := s.timeline.Evaluate(rec.CMDate, rec.ApprovalDate, approval)

	out.Status = final.Status
	out.Risk = final.Risk
	out.MissingApprovals = final.Missing
	out.TimelineDays = final.Days
	out.TimelineStatus = final.Timeline
	out.ApprovalSequence = final.Sequence

	out.ViolationReason, out.ViolationCount = aggregateViolations(
		out.Status, out.MissingApprovals, out.ApprovalSequence, out.TimelineStatus)

	out.DesignationLevelCheck = checkSeparationOfDuties(rec.CreatedBy, rec.Approver)

	return out
}

func buildReport(results []memo.Result) Report {
	r := Report{Total: len(results)}
	for _, res := range results {
		o := res.Outcome
		switch o.Status {
		case memo.StatusCompliant:
			r.Compliant++
		case memo.StatusViolation:
			r.Violations++
		}
		switch o.Risk {
		case memo.RiskHigh:
			r.HighRisk++
		case memo.RiskMedium:
			r.MediumRisk++
		}
		if strings.HasPrefix(o.TimelineStatus, "Over") {
			r.OverSLA++
		}
		if o.DuplicateMemo == memo.DuplicateYes {
			r.Duplicates++
		}
		if o.DesignationLevelCheck == memo.SoDViolation {
			r.SoDViolations++
		}
	}
	return r
}

func (s *Service) recordMetrics(ctx context.Context, results []memo.Result, start time.Time) {
	if s.registry == nil {
		return
	}
	s.registry.RecordBatch(ctx, len(results), time.Since(start))
	for _, res := range results {
		o := res.Outcome
		s.registry.RecordVerdict(ctx, o.Status == memo.StatusCompliant, string(o.Risk))
		if o.DuplicateMemo == memo.DuplicateYes {
			s.registry.RecordDuplicate(ctx)
		}
		if o.DesignationLevelCheck == memo.SoDViolation {
			s.registry.RecordSoDViolation(ctx)
		}
	}
}
