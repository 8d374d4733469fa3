package insights

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// NormalizeTeam converts a raw team value (name string, {id, name} object or
// anything else) into a TeamRef. It never fails.
func NormalizeTeam(raw json.RawMessage) models.TeamRef {
	var team RawTeam
	if err := team.UnmarshalJSON(raw); err != nil {
		return models.TeamRef{Name: models.UnknownTeamName}
	}
	return team.Ref()
}

// NormalizeStatus upper-cases a status, defaulting to SCHEDULED
func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return models.StatusScheduled
	}
	return status
}

// ParseFixture normalizes one fixture, insight card or table row. The item may
// be a bare fixture or wrap one under "fixture". ok is false when the item is
// undecodable or fails the validity filter.
func ParseFixture(raw json.RawMessage) (models.Fixture, bool) {
	var env wireEnvelope
	if !isObject(raw) || json.Unmarshal(raw, &env) != nil {
		return models.Fixture{}, false
	}

	fixture, ok := parseFixtureBody(raw, env)
	if !ok || !fixture.Valid() {
		return models.Fixture{}, false
	}
	return fixture, true
}

// ParseFixtures normalizes a batch, silently dropping items that fail.
// Failure of one item never affects its siblings.
func ParseFixtures(items []json.RawMessage) []models.Fixture {
	fixtures := make([]models.Fixture, 0, len(items))
	for _, item := range items {
		if fixture, ok := ParseFixture(item); ok {
			fixtures = append(fixtures, fixture)
		}
	}
	return fixtures
}

func parseFixtureBody(raw json.RawMessage, env wireEnvelope) (models.Fixture, bool) {
	body := raw
	nested := isObject(env.Fixture)
	if nested {
		body = env.Fixture
	}

	var wf wireFixture
	if err := json.Unmarshal(body, &wf); err != nil {
		return models.Fixture{}, false
	}

	matchID, _ := parseInt(wf.MatchID)
	utcDate := parseString(wf.UTCDate)

	fixture := models.Fixture{
		MatchID:     matchID,
		UTCDate:     utcDate,
		Status:      NormalizeStatus(parseString(wf.Status)),
		Matchday:    parseOptionalInt(wf.Matchday),
		Competition: wf.Competition.Competition(),
		HomeTeam:    wf.HomeTeam.Ref(),
		AwayTeam:    wf.AwayTeam.Ref(),
		Score:       parseScore(wf.Score),
	}
	if kickoff, ok := ParseKickoff(utcDate); ok {
		fixture.Kickoff = kickoff
	}

	tags := []string(env.Tags)
	quickTag := env.QuickTag
	if nested {
		if len(tags) == 0 {
			tags = wf.Tags
		}
		if len(bytes.TrimSpace(quickTag)) == 0 {
			quickTag = wf.QuickTag
		}
	}
	if len(tags) > 0 {
		fixture.Tags = tags
	}
	fixture.QuickTag = ResolveQuickTag(tags, parseOptionalString(quickTag))

	return fixture, true
}

// ResolveQuickTag surfaces at most one tag: the first tag when non-empty,
// otherwise the explicit quick tag, otherwise nil.
func ResolveQuickTag(tags []string, explicit *string) *string {
	if len(tags) > 0 {
		if first := strings.TrimSpace(tags[0]); first != "" {
			return &first
		}
	}
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		tag := strings.TrimSpace(*explicit)
		return &tag
	}
	return nil
}

// parseScore reads a {home, away} object; sides that are absent or not
// integers stay nil
func parseScore(raw json.RawMessage) models.Score {
	if !isObject(raw) {
		return models.Score{}
	}

	var obj struct {
		Home json.RawMessage `json:"home"`
		Away json.RawMessage `json:"away"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.Score{}
	}

	return models.Score{
		Home: parseOptionalInt(obj.Home),
		Away: parseOptionalInt(obj.Away),
	}
}

// rankingSubScores lists the named sub-scores in preference order
var rankingSubScores = []string{"bttsScore", "over25Score", "formMismatchScore"}

// ResolveRankingScore extracts a single numeric score from a ranking's score
// field: a plain number wins, else the first present named sub-score. ok is
// false when no score is available, which is distinct from a score of zero.
func ResolveRankingScore(raw json.RawMessage) (float64, bool) {
	if score, ok := parseFloat(raw); ok {
		return score, true
	}
	if !isObject(raw) {
		return 0, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, false
	}
	for _, key := range rankingSubScores {
		if score, ok := parseFloat(obj[key]); ok {
			return score, true
		}
	}
	return 0, false
}

// ParseRankingItem normalizes one leaderboard entry. Ranking fixtures only
// need a match id and both team names; the kickoff date is optional.
func ParseRankingItem(raw json.RawMessage) (models.RankingItem, bool) {
	var env wireEnvelope
	if !isObject(raw) || json.Unmarshal(raw, &env) != nil {
		return models.RankingItem{}, false
	}

	fixture, ok := parseFixtureBody(raw, env)
	if !ok || fixture.MatchID == 0 || fixture.HomeTeam.Name == "" || fixture.AwayTeam.Name == "" {
		return models.RankingItem{}, false
	}

	item := models.RankingItem{Fixture: fixture}
	if score, ok := ResolveRankingScore(env.Score); ok {
		item.Score = &score
	}
	return item, true
}

// ParseRankingItems normalizes a leaderboard, keeping upstream order. A
// positive limit truncates the result after invalid entries are dropped.
func ParseRankingItems(items []json.RawMessage, limit int) []models.RankingItem {
	ranking := make([]models.RankingItem, 0, len(items))
	for _, raw := range items {
		if limit > 0 && len(ranking) == limit {
			break
		}
		if item, ok := ParseRankingItem(raw); ok {
			ranking = append(ranking, item)
		}
	}
	return ranking
}
