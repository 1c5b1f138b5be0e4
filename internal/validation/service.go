package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"datecheck-backend/internal/dates"
	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
	"datecheck-backend/internal/shared/metrics"
	"datecheck-backend/internal/shared/telemetry"
	"datecheck-backend/internal/shared/util"
)

// Service runs the full validation pipeline: extraction, segmentation,
// period building, timeline rules, typo detection and suggestion ranking.
// Every stage is wrapped so a failure degrades the result instead of
// aborting it; the service never returns an error to its caller.
type Service struct {
	parser    *dates.Parser
	segmenter *periods.Segmenter
	builder   *periods.Builder
	settings  *settings.Service
	runs      Repo
	sink      telemetry.Sink
	now       func() time.Time
}

// NewService wires the pipeline. runs may be nil, in which case results
// are not persisted.
func NewService(settingsSvc *settings.Service, runs Repo, sink telemetry.Sink) *Service {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	parser := dates.NewParser(sink)
	return &Service{
		parser:    parser,
		segmenter: periods.NewSegmenter(sink),
		builder:   periods.NewBuilder(parser, sink),
		settings:  settingsSvc,
		runs:      runs,
		sink:      sink,
		now:       time.Now,
	}
}

// ParseEducationDates segments the text and builds education periods from
// every block in the education section.
func (s *Service) ParseEducationDates(text string) []periods.EducationPeriod {
	blocks := s.segmenter.EducationBlocks(text)
	out := make([]periods.EducationPeriod, 0, len(blocks))
	for _, block := range blocks {
		if p, ok := s.builder.BuildEducation(block); ok {
			out = append(out, p)
		}
	}
	return out
}

// ParseWorkExperience segments the text and builds work periods from every
// block in the experience section.
func (s *Service) ParseWorkExperience(text string) []periods.WorkExperience {
	blocks := s.segmenter.WorkBlocks(text)
	out := make([]periods.WorkExperience, 0, len(blocks))
	for _, block := range blocks {
		if w, ok := s.builder.BuildWork(block); ok {
			out = append(out, w)
		}
	}
	return out
}

// ValidateResumeDates runs the whole pipeline over raw resume text. It
// always returns a structured result: stage failures surface as warnings,
// and an unexpected panic anywhere yields a valid-by-default empty result
// with one explanatory warning.
func (s *Service) ValidateResumeDates(ctx context.Context, text string) (res Result) {
	started := time.Now()
	metrics.IncValidationStarted()
	defer func() {
		if r := recover(); r != nil {
			s.sink.Emit(telemetry.Event{
				Level:     "error",
				Category:  "validation",
				Operation: "validate_resume_dates",
				Err:       fmt.Errorf("pipeline panic: %v", r),
			})
			res = emptyResult()
			res.Warnings = append(res.Warnings, Warning{
				Category: CategoryGeneral,
				Message:  "date validation could not be completed, results are unavailable",
			})
		}
		metrics.ObserveValidationDurationMs(float64(time.Since(started).Microseconds()) / 1000)
		metrics.IncValidationCompleted()
		if !res.IsValid {
			metrics.IncValidationInvalid()
		}
	}()

	res = emptyResult()
	if strings.TrimSpace(text) == "" {
		res.Warnings = append(res.Warnings, Warning{
			Category: CategoryGeneral,
			Message:  "no resume text provided, nothing to validate",
		})
		return res
	}

	cfg := s.settings.Get(ctx)
	now := s.now()
	degraded := false

	var edu []periods.EducationPeriod
	if !s.stage("parse_education", &res, "could not parse education dates", func() {
		edu = s.ParseEducationDates(text)
	}) {
		degraded = true
		edu = nil
	}

	var work []periods.WorkExperience
	if !s.stage("parse_work", &res, "could not parse work experience dates", func() {
		work = s.ParseWorkExperience(text)
	}) {
		degraded = true
		work = nil
	}

	if !s.stage("validate_education", &res, "education timeline checks were skipped", func() {
		res.Issues = append(res.Issues, ValidateEducationTimeline(edu, cfg, now)...)
	}) {
		degraded = true
	}
	if !s.stage("validate_work", &res, "work timeline checks were skipped", func() {
		res.Issues = append(res.Issues, ValidateWorkTimeline(work, cfg, now)...)
	}) {
		degraded = true
	}
	if !s.stage("general_checks", &res, "general date checks were skipped", func() {
		res.Issues = append(res.Issues, GeneralChecks(edu, work, now)...)
	}) {
		degraded = true
	}

	if cfg.EnableTypoDetection {
		if !s.stage("suggestions", &res, "date correction suggestions are unavailable", func() {
			res.Suggestions = GenerateSuggestions(res.Issues, edu, work, cfg, now)
		}) {
			degraded = true
		}
	}

	reclassifyLowConfidence(&res, cfg.ConfidenceThreshold)
	res.recomputeValidity()

	if degraded {
		metrics.IncValidationDegraded()
	}
	s.saveRun(ctx, text, res)
	return res
}

// stage runs fn, converting a panic into a general warning on the result.
func (s *Service) stage(name string, res *Result, warning string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			s.sink.Emit(telemetry.Event{
				Level:     "error",
				Category:  "validation",
				Operation: name,
				Err:       fmt.Errorf("stage panic: %v", r),
			})
			res.Warnings = append(res.Warnings, Warning{
				Category: CategoryGeneral,
				Message:  warning,
			})
		}
	}()
	fn()
	return true
}

// reclassifyLowConfidence turns critical issues below the threshold into
// plain warnings. The suggested fix does not survive the downgrade.
func reclassifyLowConfidence(res *Result, threshold float64) {
	kept := make([]Issue, 0, len(res.Issues))
	for _, issue := range res.Issues {
		if issue.Type == IssueCritical && issue.Confidence < threshold {
			res.Warnings = append(res.Warnings, Warning{
				Category: issue.Category,
				Message:  issue.Message,
				Context:  issue.DetectedDate,
			})
			continue
		}
		kept = append(kept, issue)
	}
	res.Issues = kept
}

// saveRun persists the outcome; persistence failures are logged and do not
// affect the returned result.
func (s *Service) saveRun(ctx context.Context, text string, res Result) {
	if s.runs == nil {
		return
	}
	run := Run{
		ID:              uuid.New(),
		TextHash:        util.HashText(text),
		TextLength:      len(text),
		Result:          res,
		IsValid:         res.IsValid,
		IssueCount:      len(res.Issues),
		WarningCount:    len(res.Warnings),
		SuggestionCount: len(res.Suggestions),
		CreatedAt:       s.now().UTC(),
	}
	if err := s.runs.Insert(ctx, run); err != nil {
		s.sink.Emit(telemetry.Event{
			Level:     "error",
			Category:  "validation",
			Operation: "save_run",
			Err:       err,
		})
	}
}
