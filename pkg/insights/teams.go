package insights

import (
	"encoding/json"
	"strings"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// TeamInsights is the normalized team page payload
type TeamInsights struct {
	Team             models.TeamRef
	Summary          models.TeamSummary
	RecentMatches    []models.RecentMatch
	UpcomingFixtures []int64
}

type wireTeamInsights struct {
	Team             json.RawMessage `json:"team"`
	Summary          json.RawMessage `json:"summary"`
	RecentMatches    json.RawMessage `json:"recentMatches"`
	Stats            json.RawMessage `json:"stats"`
	RecentForm       tagList         `json:"recent_form"`
	UpcomingFixtures json.RawMessage `json:"upcoming_fixtures"`
}

// legacyStats is the older snake_case team statistics block
type legacyStats struct {
	MatchesPlayed json.RawMessage `json:"matches_played"`
	Wins          json.RawMessage `json:"wins"`
	Draws         json.RawMessage `json:"draws"`
	Losses        json.RawMessage `json:"losses"`
	GoalsFor      json.RawMessage `json:"goals_for"`
	GoalsAgainst  json.RawMessage `json:"goals_against"`
}

// ParseTeamInsights normalizes a team insights payload. Both the current
// {team, summary, recentMatches} shape and the legacy {team, stats,
// recent_form, upcoming_fixtures} shape are accepted; ok is false when
// neither a summary nor legacy stats are present.
func ParseTeamInsights(raw json.RawMessage) (TeamInsights, bool) {
	var wt wireTeamInsights
	if !isObject(raw) || json.Unmarshal(raw, &wt) != nil {
		return TeamInsights{}, false
	}

	insights := TeamInsights{
		Team:             NormalizeTeam(wt.Team),
		RecentMatches:    ParseRecentMatches(wt.RecentMatches),
		UpcomingFixtures: parseIDs(wt.UpcomingFixtures),
	}

	if summary := ParseTeamSummary(wt.Summary); summary != nil {
		insights.Summary = *summary
	} else if legacy, ok := parseLegacyStats(wt.Stats); ok {
		insights.Summary = legacySummary(legacy, wt.RecentForm)
	} else {
		return TeamInsights{}, false
	}

	fillSummaryTeam(&insights.Summary, insights.Team)
	return insights, true
}

func parseLegacyStats(raw json.RawMessage) (legacyStats, bool) {
	var stats legacyStats
	if !isObject(raw) || json.Unmarshal(raw, &stats) != nil {
		return legacyStats{}, false
	}
	return stats, true
}

// legacySummary lifts legacy stats into a TeamSummary. Rates are not part of
// the legacy shape and stay 0.
func legacySummary(stats legacyStats, form []string) models.TeamSummary {
	summary := models.TeamSummary{
		MatchesPlayed: lenientInt(stats.MatchesPlayed),
		Wins:          lenientInt(stats.Wins),
		Draws:         lenientInt(stats.Draws),
		Losses:        lenientInt(stats.Losses),
		GoalsFor:      lenientInt(stats.GoalsFor),
		GoalsAgainst:  lenientInt(stats.GoalsAgainst),
		FormString:    strings.ToUpper(strings.Join(form, "")),
	}
	summary.Points = summary.Wins*PointsWin + summary.Draws*PointsDraw
	if summary.MatchesPlayed > 0 {
		summary.AvgGoalsFor = float64(summary.GoalsFor) / float64(summary.MatchesPlayed)
		summary.AvgGoalsAgainst = float64(summary.GoalsAgainst) / float64(summary.MatchesPlayed)
	}
	return summary
}

func fillSummaryTeam(summary *models.TeamSummary, team models.TeamRef) {
	if summary.TeamID == 0 && team.ID != nil {
		summary.TeamID = *team.ID
	}
	if summary.TeamName == "" {
		summary.TeamName = team.Name
	}
}

func parseIDs(raw json.RawMessage) []int64 {
	items := splitList(raw)
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if id, ok := parseInt(item); ok && id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// PreviewSide is one team's half of a match preview
type PreviewSide struct {
	Team          models.TeamRef
	Summary       *models.TeamSummary
	RecentMatches []models.RecentMatch
}

// MatchPreview is the normalized match preview payload
type MatchPreview struct {
	Match      models.Fixture
	Tags       []string
	Scores     models.CardScores
	WhyBullets []string
	Home       PreviewSide
	Away       PreviewSide
}

type wireMatchPreview struct {
	Match      json.RawMessage `json:"match"`
	Tags       tagList         `json:"tags"`
	Scores     json.RawMessage `json:"scores"`
	WhyBullets tagList         `json:"whyBullets"`
	Home       json.RawMessage `json:"home"`
	Away       json.RawMessage `json:"away"`
}

type wirePreviewSide struct {
	Team          json.RawMessage `json:"team"`
	TeamName      json.RawMessage `json:"teamName"`
	Summary       json.RawMessage `json:"summary"`
	RecentMatches json.RawMessage `json:"recentMatches"`
}

// ParseMatchPreview normalizes a match preview. The match must pass the
// fixture validity filter. Metrics missing from scores are computed from the
// summaries when both are present.
func ParseMatchPreview(raw json.RawMessage, window int) (MatchPreview, bool) {
	var wp wireMatchPreview
	if !isObject(raw) || json.Unmarshal(raw, &wp) != nil {
		return MatchPreview{}, false
	}

	match, ok := ParseFixture(wp.Match)
	if !ok {
		return MatchPreview{}, false
	}

	preview := MatchPreview{
		Match:      match,
		Tags:       wp.Tags,
		WhyBullets: wp.WhyBullets,
		Home:       parsePreviewSide(wp.Home, match.HomeTeam),
		Away:       parsePreviewSide(wp.Away, match.AwayTeam),
	}
	if len(preview.Tags) > 0 && preview.Match.QuickTag == nil {
		preview.Match.QuickTag = ResolveQuickTag(preview.Tags, nil)
	}

	supplied, _ := parseScores(wp.Scores)
	preview.Scores = completeScores(supplied, preview.Home.Summary, preview.Away.Summary, window)

	return preview, true
}

// parsePreviewSide reads {team | teamName, summary, recentMatches}; the
// fixture's team is used when the side names no team of its own
func parsePreviewSide(raw json.RawMessage, fallback models.TeamRef) PreviewSide {
	side := PreviewSide{Team: fallback}

	var ws wirePreviewSide
	if !isObject(raw) || json.Unmarshal(raw, &ws) != nil {
		return side
	}

	if len(ws.Team) > 0 {
		if team := NormalizeTeam(ws.Team); team.Name != models.UnknownTeamName || team.ID != nil {
			side.Team = team
		}
	} else if name := parseString(ws.TeamName); name != "" {
		side.Team = models.TeamRef{ID: fallback.ID, Name: name}
	}

	side.Summary = ParseTeamSummary(ws.Summary)
	side.RecentMatches = ParseRecentMatches(ws.RecentMatches)
	return side
}
