package models

import "time"

// Fixture statuses as published by the upstream backend
const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusLive      = "LIVE"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// UnknownTeamName is used whenever a team value carries no usable name
const UnknownTeamName = "Unknown"

// TeamRef identifies a team. ID is nil when the source only supplied a name,
// in which case no logo or team link can be resolved.
type TeamRef struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name"`
}

// Score holds a match result; nil on either side means no result yet
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Complete reports whether both sides of the score are present
func (s Score) Complete() bool {
	return s.Home != nil && s.Away != nil
}

// Competition names the league or cup a fixture belongs to
type Competition struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// Fixture is the canonical fixture representation every view is built from
type Fixture struct {
	MatchID     int64       `json:"matchId"`
	UTCDate     string      `json:"utcDate"`
	Kickoff     time.Time   `json:"-"` // parsed UTCDate, zero when unparseable
	Status      string      `json:"status"`
	Matchday    *int        `json:"matchday,omitempty"`
	Competition Competition `json:"competition"`
	HomeTeam    TeamRef     `json:"homeTeam"`
	AwayTeam    TeamRef     `json:"awayTeam"`
	Score       Score       `json:"score"`
	QuickTag    *string     `json:"quickTag"`
	Tags        []string    `json:"tags,omitempty"`
}

// Valid reports whether the fixture carries enough data to be rendered
func (f Fixture) Valid() bool {
	return f.MatchID != 0 && f.UTCDate != "" && f.HomeTeam.Name != "" && f.AwayTeam.Name != ""
}

// TeamSummary aggregates a team's last N finished matches. It is produced
// upstream; FormString lists W/D/L results most recent first.
type TeamSummary struct {
	TeamID          int     `json:"teamId"`
	TeamName        string  `json:"teamName"`
	MatchesPlayed   int     `json:"matchesPlayed"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	Points          int     `json:"points"`
	GoalsFor        int     `json:"goalsFor"`
	GoalsAgainst    int     `json:"goalsAgainst"`
	AvgGoalsFor     float64 `json:"avgGoalsFor"`
	AvgGoalsAgainst float64 `json:"avgGoalsAgainst"`
	BTTSRate        float64 `json:"bttsRate"`
	Over25Rate      float64 `json:"over25Rate"`
	CleanSheetRate  float64 `json:"cleanSheetRate"`
	FormString      string  `json:"formString"`
}

// InsightScores are the three headline metrics for a fixture, each in [0,1]
type InsightScores struct {
	BTTSScore         float64 `json:"bttsScore"`
	Over25Score       float64 `json:"over25Score"`
	FormMismatchScore float64 `json:"formMismatchScore"`
}

// CardScores are the headline metrics as carried by a card or preview. A nil
// metric was neither supplied nor computable and is not displayed.
type CardScores struct {
	BTTSScore         *float64 `json:"bttsScore"`
	Over25Score       *float64 `json:"over25Score"`
	FormMismatchScore *float64 `json:"formMismatchScore"`
}

// RankingItem is one leaderboard entry. Score is nil when the upstream item
// carried no usable score; ordering comes from upstream.
type RankingItem struct {
	Fixture Fixture  `json:"fixture"`
	Score   *float64 `json:"score"`
}

// DateBucket groups fixtures sharing a local calendar day
type DateBucket struct {
	DateKey  string    `json:"dateKey"`
	Fixtures []Fixture `json:"fixtures"`
}

// RecentMatch is one row of a team's recent results
type RecentMatch struct {
	Date         string `json:"date"`
	OpponentName string `json:"opponentName"`
	HomeAway     string `json:"homeAway"`
	ScoreFor     int    `json:"scoreFor"`
	ScoreAgainst int    `json:"scoreAgainst"`
	Result       string `json:"result"`
}
