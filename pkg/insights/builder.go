package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// ErrInvalidPayload is returned when a payload cannot yield a view at all.
// Individual malformed records inside a payload never cause it.
var ErrInvalidPayload = errors.New("invalid payload")

// Params holds the display parameters views are built with
type Params struct {
	Location       *time.Location // target timezone for buckets and kickoff times
	WindowSize     int            // trailing matches behind fixture scores
	TeamWindowSize int            // trailing matches shown on team pages
	RankingsLimit  int            // entries kept per leaderboard, 0 keeps all
}

// Report summarizes how many records a build received and kept
type Report struct {
	Kind     string
	Received int
	Kept     int
}

// Dropped is the number of records discarded as malformed
func (r Report) Dropped() int {
	return r.Received - r.Kept
}

func (r *Report) add(received, kept int) {
	r.Received += received
	r.Kept += kept
}

// Builder turns upstream payloads into rendered view-models. It holds no
// mutable state and is safe for concurrent use.
type Builder struct {
	params Params
	logger zerolog.Logger
}

// NewBuilder creates a new view builder
func NewBuilder(params Params, logger zerolog.Logger) *Builder {
	if params.Location == nil {
		params.Location = time.UTC
	}
	return &Builder{
		params: params,
		logger: logger.With().Str("component", "view_builder").Logger(),
	}
}

// Params returns the builder's parameters
func (b *Builder) Params() Params {
	return b.params
}

type wireDashboard struct {
	Date          json.RawMessage `json:"date"`
	Spotlight     json.RawMessage `json:"spotlight"`
	Rankings      json.RawMessage `json:"rankings"`
	FixturesTable json.RawMessage `json:"fixturesTable"`
	Fixtures      json.RawMessage `json:"fixtures"`
}

type wireRankings struct {
	HighGoals json.RawMessage `json:"highGoals"`
	HighBTTS  json.RawMessage `json:"highBTTS"`
	Mismatch  json.RawMessage `json:"mismatch"`
}

// BuildDashboard builds the dashboard for date. The payload's own date is
// used when date is empty.
func (b *Builder) BuildDashboard(date string, raw json.RawMessage) (*models.DashboardView, Report, error) {
	report := Report{Kind: models.KindDashboard}

	var wd wireDashboard
	if err := decodeObject(raw, &wd); err != nil {
		return nil, report, err
	}
	if date == "" {
		date = parseString(wd.Date)
	}

	fixtureItems := splitList(wd.FixturesTable)
	if fixtureItems == nil {
		fixtureItems = splitList(wd.Fixtures)
	}
	fixtures := ParseFixtures(fixtureItems)
	report.add(len(fixtureItems), len(fixtures))

	rows := make([]models.FixtureRow, 0, len(fixtures))
	for _, fixture := range fixtures {
		rows = append(rows, Row(fixture, b.params.Location))
	}

	view := &models.DashboardView{
		ViewMeta:  b.meta(),
		Date:      date,
		Spotlight: b.spotlight(wd.Spotlight, &report),
		Rankings:  b.rankings(wd.Rankings, &report),
		Fixtures:  rows,
	}

	b.logBuilt(report, date)
	return view, report, nil
}

type wireUpcoming struct {
	DateFrom  json.RawMessage `json:"dateFrom"`
	DateTo    json.RawMessage `json:"dateTo"`
	Range     json.RawMessage `json:"range"`
	Fixtures  json.RawMessage `json:"fixtures"`
	Spotlight json.RawMessage `json:"spotlight"`
}

// BuildUpcoming builds the upcoming view, grouping fixtures into local
// calendar-day buckets
func (b *Builder) BuildUpcoming(rangeKey string, raw json.RawMessage) (*models.UpcomingView, Report, error) {
	report := Report{Kind: models.KindUpcoming}

	var wu wireUpcoming
	if err := decodeObject(raw, &wu); err != nil {
		return nil, report, err
	}
	if rangeKey == "" {
		rangeKey = parseString(wu.Range)
	}

	items := splitList(wu.Fixtures)
	fixtures := ParseFixtures(items)
	report.add(len(items), len(fixtures))

	view := &models.UpcomingView{
		ViewMeta:  b.meta(),
		Range:     rangeKey,
		DateFrom:  parseString(wu.DateFrom),
		DateTo:    parseString(wu.DateTo),
		Spotlight: b.spotlight(wu.Spotlight, &report),
		Buckets:   BucketByDate(fixtures, b.params.Location),
	}

	b.logBuilt(report, rangeKey)
	return view, report, nil
}

// BuildPreview builds a match preview
func (b *Builder) BuildPreview(raw json.RawMessage) (*models.MatchPreviewView, Report, error) {
	report := Report{Kind: models.KindPreview, Received: 1}

	if !isObject(raw) {
		return nil, report, fmt.Errorf("%w: match preview is not an object", ErrInvalidPayload)
	}
	preview, ok := ParseMatchPreview(raw, b.params.WindowSize)
	if !ok {
		return nil, report, fmt.Errorf("%w: match preview has no valid match", ErrInvalidPayload)
	}
	report.Kept = 1

	view := &models.MatchPreviewView{
		ViewMeta:    b.meta(),
		Match:       Row(preview.Match, b.params.Location),
		KickoffLong: FormatKickoffLong(preview.Match, b.params.Location),
		Tags:        preview.Tags,
		Scores:      preview.Scores,
		Display:     FormatCardRates(preview.Scores),
		WhyBullets:  preview.WhyBullets,
		Home:        b.previewSide(preview.Home),
		Away:        b.previewSide(preview.Away),
	}
	if preview.Home.Summary != nil && preview.Away.Summary != nil {
		view.CleanSheetScore = FormatRate(CleanSheetScore(*preview.Home.Summary, *preview.Away.Summary))
	}

	b.logger.Debug().
		Int64("match_id", preview.Match.MatchID).
		Str("btts", view.Display.BTTS).
		Str("over25", view.Display.Over25).
		Str("form_mismatch", view.Display.FormMismatch).
		Msg("built match preview")

	return view, report, nil
}

// BuildTeamInsights builds a team page from either team insights shape
func (b *Builder) BuildTeamInsights(raw json.RawMessage) (*models.TeamInsightsView, Report, error) {
	report := Report{Kind: models.KindTeam, Received: 1}

	if !isObject(raw) {
		return nil, report, fmt.Errorf("%w: team insights is not an object", ErrInvalidPayload)
	}
	team, ok := ParseTeamInsights(raw)
	if !ok {
		return nil, report, fmt.Errorf("%w: team insights has no summary", ErrInvalidPayload)
	}
	report.Kept = 1

	view := &models.TeamInsightsView{
		ViewMeta:         b.meta(),
		Team:             team.Team,
		Summary:          team.Summary,
		Form:             truncate(FormTokens(team.Summary.FormString), b.params.TeamWindowSize),
		BTTSRate:         FormatRate(team.Summary.BTTSRate),
		Over25Rate:       FormatRate(team.Summary.Over25Rate),
		CleanSheetRate:   FormatRate(team.Summary.CleanSheetRate),
		RecentMatches:    team.RecentMatches,
		UpcomingFixtures: team.UpcomingFixtures,
	}

	b.logger.Debug().
		Str("team", team.Team.Name).
		Int("matches_played", team.Summary.MatchesPlayed).
		Msg("built team insights")

	return view, report, nil
}

func (b *Builder) spotlight(raw json.RawMessage, report *Report) []models.InsightCardView {
	items := splitList(raw)
	cards := ParseInsightCards(items, b.params.WindowSize)
	report.add(len(items), len(cards))

	views := make([]models.InsightCardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, b.cardView(card))
	}
	return views
}

func (b *Builder) cardView(card InsightCard) models.InsightCardView {
	view := models.InsightCardView{
		Row:         Row(card.Fixture, b.params.Location),
		HomeSummary: card.HomeSummary,
		AwaySummary: card.AwaySummary,
		Scores:      card.Scores,
		Display:     FormatCardRates(card.Scores),
		HomeForm:    []string{},
		AwayForm:    []string{},
	}
	if card.HomeSummary != nil {
		view.HomeForm = truncate(FormTokens(card.HomeSummary.FormString), b.params.WindowSize)
	}
	if card.AwaySummary != nil {
		view.AwayForm = truncate(FormTokens(card.AwaySummary.FormString), b.params.WindowSize)
	}
	return view
}

func (b *Builder) rankings(raw json.RawMessage, report *Report) models.RankingsView {
	var wr wireRankings
	if isObject(raw) {
		_ = json.Unmarshal(raw, &wr)
	}

	return models.RankingsView{
		HighGoals: b.rankingRows(wr.HighGoals, report),
		HighBTTS:  b.rankingRows(wr.HighBTTS, report),
		Mismatch:  b.rankingRows(wr.Mismatch, report),
	}
}

func (b *Builder) rankingRows(raw json.RawMessage, report *Report) []models.RankingRow {
	items := splitList(raw)
	valid := ParseRankingItems(items, 0)
	report.add(len(items), len(valid))

	ranking := valid
	if limit := b.params.RankingsLimit; limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	rows := make([]models.RankingRow, 0, len(ranking))
	for _, item := range ranking {
		rows = append(rows, models.RankingRow{
			Item:         item,
			TeamsLabel:   TeamsLabel(item.Fixture),
			KickoffLocal: FormatKickoff(item.Fixture, b.params.Location),
			ScoreDisplay: FormatRankingScore(item.Score),
		})
	}
	return rows
}

func (b *Builder) previewSide(side PreviewSide) models.TeamPreview {
	preview := models.TeamPreview{
		Team:          side.Team,
		Summary:       side.Summary,
		Form:          []string{},
		RecentMatches: side.RecentMatches,
	}
	if side.Summary != nil {
		preview.Form = truncate(FormTokens(side.Summary.FormString), b.params.WindowSize)
		preview.CleanSheetRate = FormatRate(side.Summary.CleanSheetRate)
	}
	return preview
}

func (b *Builder) meta() models.ViewMeta {
	return models.ViewMeta{
		ViewID:   uuid.New(),
		BuiltAt:  time.Now().UTC(),
		Timezone: b.params.Location.String(),
	}
}

func (b *Builder) logBuilt(report Report, key string) {
	level := zerolog.InfoLevel
	if report.Dropped() > 0 {
		level = zerolog.WarnLevel
	}

	b.logger.WithLevel(level).
		Str("kind", report.Kind).
		Str("key", key).
		Int("received", report.Received).
		Int("kept", report.Kept).
		Int("dropped", report.Dropped()).
		Msg("built view")
}

func decodeObject(raw json.RawMessage, dst any) error {
	if !isObject(raw) {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func truncate(tokens []string, limit int) []string {
	if limit > 0 && len(tokens) > limit {
		return tokens[:limit]
	}
	return tokens
}
