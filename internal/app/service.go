// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/clincher/internal/adapters/repository"
	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/roster"
	"github.com/okian/clincher/internal/domain/scenario"
	"github.com/okian/clincher/internal/domain/standings"
	"github.com/okian/clincher/internal/domain/types"
	"github.com/okian/clincher/pkg/logger"
	"github.com/okian/clincher/pkg/metrics"
)

// Service implements the API dependencies for the championship
// calculator: manual what-if simulations and exhaustive scenario
// analyses over a shared roster.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	calc     *points.Calculator
	explorer *scenario.Explorer
	cache    *repository.AnalysisCache[types.Analysis]

	// Configuration
	seedRoster  []roster.Contender
	rosterPath  string
	cacheSize   int
	pointsTable []int
	podiumDepth int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoster seeds the service with an in-memory roster instead of a file.
func WithRoster(list []roster.Contender) Option {
	return func(s *Service) {
		if len(list) > 0 {
			s.seedRoster = list
		}
	}
}

// WithRosterPath loads the roster from a YAML file at Start.
func WithRosterPath(path string) Option {
	return func(s *Service) {
		s.rosterPath = path
	}
}

// WithCacheSize bounds the scenario analysis cache.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithPointsTable overrides the race points paid per position.
func WithPointsTable(table []int) Option {
	return func(s *Service) {
		if len(table) > 0 {
			s.pointsTable = table
		}
	}
}

// WithPodiumDepth sets the deepest position counted as a podium.
func WithPodiumDepth(depth int) Option {
	return func(s *Service) {
		if depth > 0 {
			s.podiumDepth = depth
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cacheSize:   64,
		podiumDepth: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the roster and initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting championship service...")

	list, err := s.resolveRoster()
	if err != nil {
		return err
	}
	if err := roster.Validate(list); err != nil {
		return err
	}

	s.store = repository.NewRosterStore(list)
	calcOpts := []points.Option{points.WithPodiumDepth(s.podiumDepth)}
	if len(s.pointsTable) > 0 {
		calcOpts = append(calcOpts, points.WithTable(s.pointsTable))
	}
	s.calc = points.NewCalculator(calcOpts...)
	s.explorer = scenario.NewExplorer(scenario.WithCalculator(s.calc))
	cache, err := repository.NewAnalysisCache[types.Analysis](s.cacheSize)
	if err != nil {
		return err
	}
	s.cache = cache

	tracked := roster.Tracked(list)
	metrics.UpdateRosterSize(len(list))
	metrics.UpdateTrackedContenders(len(tracked))

	s.started = true
	s.logger.Info(ctx, "championship service started",
		logger.Int("contenders", len(list)),
		logger.Int("tracked", len(tracked)),
		logger.Int("cacheSize", s.cacheSize),
	)
	return nil
}

// resolveRoster picks the roster source: file path, seeded list, or
// the built-in sample.
func (s *Service) resolveRoster() ([]roster.Contender, error) {
	if s.rosterPath != "" {
		return roster.Load(s.rosterPath)
	}
	if len(s.seedRoster) > 0 {
		return s.seedRoster, nil
	}
	return roster.Default(), nil
}

// Stop shuts the service down and drops cached analyses.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.cache != nil {
		s.cache.Purge()
	}
	s.started = false
	s.logger.Info(context.Background(), "championship service stopped")
}

// Contenders returns the active roster.
func (s *Service) Contenders(ctx context.Context) []roster.Contender {
	return s.store.List(ctx)
}

// ReplaceRoster swaps the roster. Cached analyses become unreachable
// through the bumped store version.
func (s *Service) ReplaceRoster(ctx context.Context, list []roster.Contender) error {
	if err := s.store.Replace(ctx, list); err != nil {
		return err
	}
	metrics.UpdateRosterSize(s.store.Count(ctx))
	metrics.UpdateTrackedContenders(len(s.store.Tracked(ctx)))
	s.logger.Info(ctx, "roster replaced",
		logger.Int("contenders", s.store.Count(ctx)),
		logger.Uint64("version", s.store.Version(ctx)),
	)
	return nil
}

// Simulate computes one manual what-if projection across the whole
// roster. Contenders absent from finishes default to the no-points
// sentinel; an unknown id is an error.
func (s *Service) Simulate(ctx context.Context, finishes map[string]points.Finish) (types.Projection, error) {
	list := s.store.List(ctx)

	known := make(map[string]struct{}, len(list))
	for _, c := range list {
		known[c.ID] = struct{}{}
	}
	for id := range finishes {
		if _, ok := known[id]; !ok {
			metrics.RecordSimulationError()
			return types.Projection{}, fmt.Errorf("%w: %q", repository.ErrNotFound, id)
		}
	}

	results := make([]points.Result, len(list))
	for i, c := range list {
		results[i] = s.calc.Compute(c, finishes[c.ID])
	}
	outcome := standings.Classify(standings.Rank(results))

	projection := types.Projection{
		RequestID: uuid.NewString(),
		Standings: toStandings(outcome.Ranked),
		Tie:       outcome.Tie,
	}
	if outcome.Champion != nil {
		row := toStanding(1, *outcome.Champion)
		projection.Champion = &row
	}
	if outcome.RunnerUp != nil {
		row := toStanding(2, *outcome.RunnerUp)
		projection.RunnerUp = &row
	}

	metrics.RecordSimulation()
	s.logger.Debug(ctx, "simulation computed",
		logger.String("requestID", projection.RequestID),
		logger.Bool("tie", projection.Tie),
	)
	return projection, nil
}

// WinningScenarios runs (or recalls from cache) the exhaustive sweep
// for targetID and returns its summarized analysis. An analysis with
// zero groups is a valid outcome: the target cannot win outright.
func (s *Service) WinningScenarios(ctx context.Context, targetID string) (types.Analysis, error) {
	target, err := s.store.Get(ctx, targetID)
	if err != nil {
		return types.Analysis{}, err
	}
	if !target.TitleFight {
		return types.Analysis{}, fmt.Errorf("%w: %q", scenario.ErrTargetNotTracked, targetID)
	}

	key := s.cache.Key(s.store.Version(ctx), targetID)
	if cached, ok := s.cache.Get(key); ok {
		metrics.RecordAnalysisCacheHit()
		cached.RequestID = uuid.NewString()
		return cached, nil
	}
	metrics.RecordAnalysisCacheMiss()

	tracked := s.store.Tracked(ctx)
	start := time.Now()
	report, err := s.explorer.Search(ctx, tracked, targetID)
	if err != nil {
		return types.Analysis{}, err
	}
	durationMs := float64(time.Since(start).Microseconds()) / 1e3

	rivals := make([]roster.Contender, 0, len(tracked)-1)
	for _, c := range tracked {
		if c.ID != targetID {
			rivals = append(rivals, c)
		}
	}
	groups := scenario.Summarize(targetID, rivals, report.Scenarios)

	analysis := types.Analysis{
		RequestID:             uuid.NewString(),
		TargetID:              target.ID,
		TargetName:            target.Name,
		Groups:                toGroups(groups),
		ScenarioCount:         len(report.Scenarios),
		CombinationsEvaluated: report.Evaluated,
		CollisionsSkipped:     report.Skipped,
	}
	s.cache.Add(key, analysis)

	metrics.RecordScenarioSearch(durationMs)
	metrics.RecordSweepCounts(report.Evaluated, report.Skipped, len(report.Scenarios))
	s.logger.Info(ctx, "scenario search completed",
		logger.String("target", targetID),
		logger.Int("winning", len(report.Scenarios)),
		logger.Int("evaluated", report.Evaluated),
		logger.Float64("durationMs", durationMs),
	)
	return analysis, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":   s.started,
		"cacheSize": s.cacheSize,
	}
	if s.started {
		stats["contenders"] = s.store.Count(ctx)
		stats["tracked"] = len(s.store.Tracked(ctx))
		stats["rosterVersion"] = s.store.Version(ctx)
		stats["cachedAnalyses"] = s.cache.Len()
	}
	return stats
}

// toStandings converts ranked results to API rows, assigning ranks.
func toStandings(ranked []points.Result) []types.Standing {
	rows := make([]types.Standing, len(ranked))
	for i, r := range ranked {
		rows[i] = toStanding(i+1, r)
	}
	return rows
}

func toStanding(rank int, r points.Result) types.Standing {
	return types.Standing{
		Rank:       rank,
		ID:         r.ID,
		Name:       r.Name,
		Team:       r.Team,
		Finish:     r.Finish.Label(),
		RacePoints: r.RacePoints,
		Points:     r.Points,
		Wins:       r.Wins,
		Podiums:    r.Podiums,
	}
}

// toGroups converts scenario groups to API cards.
func toGroups(groups []scenario.Group) []types.ScenarioGroup {
	out := make([]types.ScenarioGroup, len(groups))
	for i, g := range groups {
		out[i] = types.ScenarioGroup{
			Label:       g.Label,
			Description: g.Description,
			Scenarios:   g.Scenarios,
		}
	}
	return out
}
