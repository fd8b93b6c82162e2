package checks

import (
	"context"
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/diff"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/report"

	"go.uber.org/zap"
)

// Service runs project checks.
type Service struct {
	registry     *Registry
	locator      *source.Locator
	logger       *zap.Logger
	config       reconcile.Config
	reportPrefix string
}

// NewService creates a new checks service. The locator resolves dataset locations and, when it
// carries a storage client, is used to publish reports below reportPrefix.
func NewService(registry *Registry, locator *source.Locator, logger *zap.Logger, config reconcile.Config, reportPrefix string) *Service {
	if registry == nil {
		registry = defaultRegistry
	}
	if locator == nil {
		locator = &source.Locator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		registry:     registry,
		locator:      locator,
		logger:       logger,
		config:       config,
		reportPrefix: reportPrefix,
	}
}

// Request describes one check run.
type Request struct {
	Project   string
	Direction string
	Source    *record.Dataset
	Reference *record.Dataset
	// RunID is generated when empty.
	RunID string
}

// Projects returns the known project names.
func (s *Service) Projects() []string {
	return s.registry.Projects()
}

// Rules returns the rule definitions of a project and direction.
func (s *Service) Rules(project, direction string) ([]rules.Definition, error) {
	adapter, err := s.registry.Lookup(project)
	if err != nil {
		return nil, err
	}
	dir, err := reconcile.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	return adapter.Rules(dir), nil
}

// Load reads a dataset from a file path, "table:" or "object:" location.
func (s *Service) Load(ctx context.Context, location string, side record.Side) (*record.Dataset, error) {
	return s.locator.Load(ctx, location, side)
}

// Check reconciles the request's datasets with the rules of its project.
func (s *Service) Check(ctx context.Context, req Request) (*reconcile.Result, error) {
	req = s.withDefaults(req)
	adapter, err := s.registry.Lookup(req.Project)
	if err != nil {
		return nil, err
	}
	dir, err := reconcile.ParseDirection(req.Direction)
	if err != nil {
		return nil, err
	}

	opts := []reconcile.Option{
		reconcile.WithLogger(s.logger.With(zap.String("project", adapter.Name()), zap.String("direction", string(dir)))),
		reconcile.WithWorkers(s.config.Workers),
		reconcile.WithRunID(req.RunID),
	}
	if s.config.Strategy != "" || s.config.PrefixPattern != "" {
		opts = append(opts, reconcile.WithStrategy(match.Strategy(s.config.Strategy), s.config.PrefixPattern))
	}
	return reconcile.Run(ctx, adapter, dir, req.Source, req.Reference, opts...)
}

// withDefaults fills the project and direction from the check configuration.
func (s *Service) withDefaults(req Request) Request {
	if req.Project == "" {
		req.Project = s.config.Project
	}
	if req.Direction == "" {
		req.Direction = s.config.Direction
	}
	return req
}

// Report builds the report of a finished run. Markup is "html" or "brackets" (the default).
func (s *Service) Report(req Request, res *reconcile.Result, markup string) *report.Report {
	req = s.withDefaults(req)
	m := diff.Brackets
	if markup == "html" {
		m = diff.HTML
	}
	opts := report.DefaultOptions()
	opts.Project, opts.Direction = req.Project, req.Direction
	return report.Build(res, req.Source, req.Reference, diff.New(m), opts)
}

// Publish uploads a report to the storage bucket.
func (s *Service) Publish(ctx context.Context, rep *report.Report, formats ...report.Format) ([]string, error) {
	if s.locator.Storage == nil {
		return nil, fmt.Errorf("cannot publish report %s: no storage client", rep.RunID)
	}
	names, err := report.Publish(ctx, s.locator.Storage, s.locator.Bucket, s.reportPrefix, rep, formats...)
	if err != nil {
		return names, err
	}
	s.logger.Info("Report published", zap.String("run_id", rep.RunID), zap.Strings("objects", names))
	return names, nil
}
