package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/fixture-insights-service/internal/cache"
	"github.com/cypherlabdev/fixture-insights-service/internal/metrics"
	"github.com/cypherlabdev/fixture-insights-service/internal/models"
	"github.com/cypherlabdev/fixture-insights-service/pkg/insights"
)

var (
	// ErrViewNotFound is returned when no view has been built for a key
	ErrViewNotFound = errors.New("view not found")
	// ErrUnknownKind is returned for upstream messages of an unsupported kind
	ErrUnknownKind = errors.New("unknown message kind")
	// ErrInvalidRange is returned for upcoming ranges outside today|tomorrow|weekend|next7
	ErrInvalidRange = errors.New("invalid upcoming range")
	// ErrMissingKey is returned when a view's cache key cannot be determined
	ErrMissingKey = errors.New("missing view key")
)

// InsightService builds views from upstream payloads and serves them cache-first
type InsightService struct {
	builder Builder
	cache   Cache
	metrics *metrics.Recorder
	logger  zerolog.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(
	builder Builder,
	cache Cache,
	recorder *metrics.Recorder,
	logger zerolog.Logger,
) *InsightService {
	return &InsightService{
		builder: builder,
		cache:   cache,
		metrics: recorder,
		logger:  logger.With().Str("component", "insight_service").Logger(),
	}
}

// IngestMessage builds the view for one upstream message and caches it
func (s *InsightService) IngestMessage(ctx context.Context, msg models.UpstreamMessage) error {
	entry, err := s.build(msg)
	if err != nil {
		return err
	}

	if err := s.cache.SetView(ctx, entry.Kind, entry.Key, entry.View); err != nil {
		s.logger.Warn().
			Err(err).
			Str("kind", entry.Kind).
			Str("key", entry.Key).
			Msg("failed to cache view")
		// Don't fail ingestion on cache errors
	}

	return nil
}

// IngestBatch builds every message of a batch and caches the results in one
// write. Messages that fail to build are skipped.
func (s *InsightService) IngestBatch(ctx context.Context, batch models.UpstreamBatch) (models.IngestResult, error) {
	var result models.IngestResult
	if len(batch.Messages) == 0 {
		return result, nil
	}

	entries := make([]models.ViewEntry, 0, len(batch.Messages))
	for _, msg := range batch.Messages {
		entry, err := s.build(msg)
		if err != nil {
			result.Failed++
			s.logger.Warn().
				Err(err).
				Str("batch_id", batch.BatchID).
				Str("kind", msg.Kind).
				Str("key", msg.Key).
				Msg("skipping upstream message")
			continue
		}
		entries = append(entries, entry)
	}
	result.Built = len(entries)

	if err := s.cache.SetViews(ctx, entries); err != nil {
		return result, fmt.Errorf("failed to cache batch: %w", err)
	}

	s.logger.Info().
		Str("batch_id", batch.BatchID).
		Int("built", result.Built).
		Int("failed", result.Failed).
		Msg("ingested upstream batch")

	return result, nil
}

// build dispatches a message to the builder and resolves its cache key
func (s *InsightService) build(msg models.UpstreamMessage) (models.ViewEntry, error) {
	var (
		entry  = models.ViewEntry{Kind: msg.Kind, Key: msg.Key}
		report insights.Report
		err    error
	)

	switch msg.Kind {
	case models.KindDashboard:
		var view *models.DashboardView
		view, report, err = s.builder.BuildDashboard(msg.Key, msg.Payload)
		if err == nil {
			entry.Key, entry.View = view.Date, view
		}
	case models.KindUpcoming:
		if !models.ValidRange(msg.Key) {
			return entry, fmt.Errorf("%w: %q", ErrInvalidRange, msg.Key)
		}
		var view *models.UpcomingView
		view, report, err = s.builder.BuildUpcoming(msg.Key, msg.Payload)
		if err == nil {
			entry.View = view
		}
	case models.KindPreview:
		var view *models.MatchPreviewView
		view, report, err = s.builder.BuildPreview(msg.Payload)
		if err == nil {
			entry.View = view
			if entry.Key == "" {
				entry.Key = strconv.FormatInt(view.Match.Fixture.MatchID, 10)
			}
		}
	case models.KindTeam:
		var view *models.TeamInsightsView
		view, report, err = s.builder.BuildTeamInsights(msg.Payload)
		if err == nil {
			entry.View = view
			if entry.Key == "" && view.Team.ID != nil {
				entry.Key = strconv.Itoa(*view.Team.ID)
			}
		}
	default:
		return entry, fmt.Errorf("%w: %q", ErrUnknownKind, msg.Kind)
	}

	if err != nil {
		s.metrics.RecordBuildFailure(msg.Kind)
		return entry, fmt.Errorf("failed to build %s view: %w", msg.Kind, err)
	}
	s.metrics.RecordBuild(msg.Kind, report.Kept, report.Dropped())

	if entry.Key == "" {
		return entry, fmt.Errorf("%w: %s view", ErrMissingKey, msg.Kind)
	}
	if msg.Kind == models.KindDashboard {
		if _, err := time.Parse(insights.DateLayout, entry.Key); err != nil {
			return entry, fmt.Errorf("%w: dashboard date %q is not YYYY-MM-DD", ErrMissingKey, entry.Key)
		}
	}
	return entry, nil
}

// GetDashboard retrieves the dashboard built for date
func (s *InsightService) GetDashboard(ctx context.Context, date string) (*models.DashboardView, error) {
	var view models.DashboardView
	if err := s.lookup(ctx, models.KindDashboard, date, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetUpcoming retrieves the upcoming view for a range
func (s *InsightService) GetUpcoming(ctx context.Context, rangeKey string) (*models.UpcomingView, error) {
	if !models.ValidRange(rangeKey) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, rangeKey)
	}

	var view models.UpcomingView
	if err := s.lookup(ctx, models.KindUpcoming, rangeKey, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetPreview retrieves the preview of a match
func (s *InsightService) GetPreview(ctx context.Context, matchID int64) (*models.MatchPreviewView, error) {
	var view models.MatchPreviewView
	if err := s.lookup(ctx, models.KindPreview, strconv.FormatInt(matchID, 10), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetTeamInsights retrieves the insights page of a team
func (s *InsightService) GetTeamInsights(ctx context.Context, teamID int) (*models.TeamInsightsView, error) {
	var view models.TeamInsightsView
	if err := s.lookup(ctx, models.KindTeam, strconv.Itoa(teamID), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ListDashboardDates returns the dates with a cached dashboard, ascending
func (s *InsightService) ListDashboardDates(ctx context.Context) ([]string, error) {
	dates, err := s.cache.ListKeys(ctx, models.KindDashboard)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	slices.Sort(dates)
	return dates, nil
}

// lookup reads a view from cache, mapping misses to ErrViewNotFound
func (s *InsightService) lookup(ctx context.Context, kind, key string, dst any) error {
	err := s.cache.GetView(ctx, kind, key, dst)
	switch {
	case err == nil:
		s.metrics.RecordCacheHit(kind)
		s.logger.Debug().Str("kind", kind).Str("key", key).Msg("cache hit for view")
		return nil
	case errors.Is(err, cache.ErrCacheMiss):
		s.metrics.RecordCacheMiss(kind)
		return fmt.Errorf("%w: %s %s", ErrViewNotFound, kind, key)
	default:
		s.metrics.RecordCacheError(kind)
		s.logger.Warn().Err(err).Str("kind", kind).Str("key", key).Msg("cache error")
		return fmt.Errorf("failed to read %s view: %w", kind, err)
	}
}

// ComputeScores scores a fixture from two team summaries over a window of
// trailing matches. A non-positive window falls back to the configured one.
func (s *InsightService) ComputeScores(home, away models.TeamSummary, window int) models.ScoresResult {
	if window <= 0 {
		window = s.builder.Params().WindowSize
	}

	scores := insights.Scores(home, away, window)
	return models.ScoresResult{
		Scores:          scores,
		Display:         insights.FormatRates(scores),
		CleanSheetScore: insights.FormatRate(insights.CleanSheetScore(home, away)),
	}
}

// BucketFixtures normalizes raw fixtures and groups them by local calendar
// day in tz, or the configured timezone when tz is empty
func (s *InsightService) BucketFixtures(raw []json.RawMessage, tz string) ([]models.DateBucket, int, error) {
	loc := s.builder.Params().Location
	if tz != "" {
		var err error
		if loc, err = insights.ResolveLocation(tz); err != nil {
			return nil, 0, err
		}
	}

	fixtures := insights.ParseFixtures(raw)
	dropped := len(raw) - len(fixtures)
	if dropped > 0 {
		s.logger.Debug().Int("dropped", dropped).Msg("dropped malformed fixtures")
	}

	return insights.BucketByDate(fixtures, loc), dropped, nil
}
