package models

import (
	"time"

	"github.com/google/uuid"
)

// View kinds, also used as Kafka message kinds and cache namespaces
const (
	KindDashboard = "dashboard"
	KindUpcoming  = "upcoming"
	KindPreview   = "preview"
	KindTeam      = "team"
)

// Upcoming ranges accepted by the upcoming view
const (
	RangeToday    = "today"
	RangeTomorrow = "tomorrow"
	RangeWeekend  = "weekend"
	RangeNext7    = "next7"
)

// ViewMeta identifies a built view for cache and log correlation
type ViewMeta struct {
	ViewID   uuid.UUID `json:"viewId"`
	BuiltAt  time.Time `json:"builtAt"`
	Timezone string    `json:"timezone"`
}

// FixtureRow is a fixture with its display strings resolved
type FixtureRow struct {
	Fixture      Fixture `json:"fixture"`
	KickoffLocal string  `json:"kickoffLocal"`
	ScoreDisplay string  `json:"scoreDisplay"`
}

// RateDisplay carries two-decimal renderings of the headline metrics
type RateDisplay struct {
	BTTS         string `json:"btts"`
	Over25       string `json:"over25"`
	FormMismatch string `json:"formMismatch"`
}

// InsightCardView is a spotlight card
type InsightCardView struct {
	Row         FixtureRow    `json:"row"`
	HomeSummary *TeamSummary  `json:"homeSummary,omitempty"`
	AwaySummary *TeamSummary  `json:"awaySummary,omitempty"`
	Scores      CardScores    `json:"scores"`
	Display     RateDisplay   `json:"display"`
	HomeForm    []string      `json:"homeForm"`
	AwayForm    []string      `json:"awayForm"`
}

// RankingRow is a leaderboard entry with its score rendered
type RankingRow struct {
	Item         RankingItem `json:"item"`
	TeamsLabel   string      `json:"teamsLabel"`
	KickoffLocal string      `json:"kickoffLocal"`
	ScoreDisplay string      `json:"scoreDisplay"`
}

// RankingsView holds the three top-N leaderboards
type RankingsView struct {
	HighGoals []RankingRow `json:"highGoals"`
	HighBTTS  []RankingRow `json:"highBTTS"`
	Mismatch  []RankingRow `json:"mismatch"`
}

// DashboardView is the rendered dashboard for one date
type DashboardView struct {
	ViewMeta
	Date      string            `json:"date"`
	Spotlight []InsightCardView `json:"spotlight"`
	Rankings  RankingsView      `json:"rankings"`
	Fixtures  []FixtureRow      `json:"fixtures"`
}

// UpcomingView is the rendered upcoming-fixtures page for a range
type UpcomingView struct {
	ViewMeta
	Range     string            `json:"range"`
	DateFrom  string            `json:"dateFrom"`
	DateTo    string            `json:"dateTo"`
	Spotlight []InsightCardView `json:"spotlight"`
	Buckets   []DateBucket      `json:"buckets"`
}

// TeamPreview is one side of a match preview
type TeamPreview struct {
	Team           TeamRef       `json:"team"`
	Summary        *TeamSummary  `json:"summary,omitempty"`
	Form           []string      `json:"form"`
	CleanSheetRate string        `json:"cleanSheetRate"`
	RecentMatches  []RecentMatch `json:"recentMatches"`
}

// MatchPreviewView is the rendered preview of one match
type MatchPreviewView struct {
	ViewMeta
	Match           FixtureRow    `json:"match"`
	KickoffLong     string        `json:"kickoffLong"`
	Tags            []string      `json:"tags"`
	Scores          CardScores    `json:"scores"`
	Display         RateDisplay   `json:"display"`
	CleanSheetScore string        `json:"cleanSheetScore"`
	WhyBullets      []string      `json:"whyBullets"`
	Home            TeamPreview   `json:"home"`
	Away            TeamPreview   `json:"away"`
}

// TeamInsightsView is the rendered team page
type TeamInsightsView struct {
	ViewMeta
	Team             TeamRef       `json:"team"`
	Summary          TeamSummary   `json:"summary"`
	Form             []string      `json:"form"`
	BTTSRate         string        `json:"bttsRate"`
	Over25Rate       string        `json:"over25Rate"`
	CleanSheetRate   string        `json:"cleanSheetRate"`
	RecentMatches    []RecentMatch `json:"recentMatches"`
	UpcomingFixtures []int64       `json:"upcomingFixtures"`
}

// ViewEntry is one view queued for a batch cache write
type ViewEntry struct {
	Kind string
	Key  string
	View any
}

// ValidRange reports whether r is an accepted upcoming range
func ValidRange(r string) bool {
	switch r {
	case RangeToday, RangeTomorrow, RangeWeekend, RangeNext7:
		return true
	}
	return false
}

// ScoresResult is a stateless score computation with its display strings
type ScoresResult struct {
	Scores          InsightScores `json:"scores"`
	Display         RateDisplay   `json:"display"`
	CleanSheetScore string        `json:"cleanSheetScore"`
}
