package insights

import (
	"encoding/json"
	"strings"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// InsightCard is a normalized spotlight card
type InsightCard struct {
	Fixture     models.Fixture
	HomeSummary *models.TeamSummary
	AwaySummary *models.TeamSummary
	Scores      models.CardScores
}

type wireScores struct {
	BTTSScore         json.RawMessage `json:"bttsScore"`
	Over25Score       json.RawMessage `json:"over25Score"`
	FormMismatchScore json.RawMessage `json:"formMismatchScore"`
}

func (w wireScores) scores() models.CardScores {
	return models.CardScores{
		BTTSScore:         optionalFloat(w.BTTSScore),
		Over25Score:       optionalFloat(w.Over25Score),
		FormMismatchScore: optionalFloat(w.FormMismatchScore),
	}
}

type wireCard struct {
	wireScores
	HomeSummary json.RawMessage `json:"homeSummary"`
	AwaySummary json.RawMessage `json:"awaySummary"`
	HomeForm    json.RawMessage `json:"homeForm"`
	AwayForm    json.RawMessage `json:"awayForm"`
	Scores      json.RawMessage `json:"scores"`
}

// ParseInsightCard normalizes a spotlight card. Summaries may arrive as
// homeSummary/awaySummary or homeForm/awayForm; scores as a nested "scores"
// object or flat fields. Metrics the card does not supply are computed over
// window when both summaries are present, and stay nil otherwise.
func ParseInsightCard(raw json.RawMessage, window int) (InsightCard, bool) {
	fixture, ok := ParseFixture(raw)
	if !ok {
		return InsightCard{}, false
	}

	var wc wireCard
	if err := json.Unmarshal(raw, &wc); err != nil {
		return InsightCard{}, false
	}

	card := InsightCard{
		Fixture:     fixture,
		HomeSummary: firstSummary(wc.HomeSummary, wc.HomeForm),
		AwaySummary: firstSummary(wc.AwaySummary, wc.AwayForm),
	}

	supplied := wc.wireScores.scores()
	if nested, ok := parseScores(wc.Scores); ok {
		supplied = nested
	}
	card.Scores = completeScores(supplied, card.HomeSummary, card.AwaySummary, window)

	return card, true
}

// ParseInsightCards normalizes a batch of cards, dropping invalid ones
func ParseInsightCards(items []json.RawMessage, window int) []InsightCard {
	cards := make([]InsightCard, 0, len(items))
	for _, item := range items {
		if card, ok := ParseInsightCard(item, window); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

type wireSummary struct {
	TeamID          json.RawMessage `json:"teamId"`
	TeamName        json.RawMessage `json:"teamName"`
	MatchesPlayed   json.RawMessage `json:"matchesPlayed"`
	Wins            json.RawMessage `json:"wins"`
	Draws           json.RawMessage `json:"draws"`
	Losses          json.RawMessage `json:"losses"`
	Points          json.RawMessage `json:"points"`
	GoalsFor        json.RawMessage `json:"goalsFor"`
	GoalsAgainst    json.RawMessage `json:"goalsAgainst"`
	AvgGoalsFor     json.RawMessage `json:"avgGoalsFor"`
	AvgGoalsAgainst json.RawMessage `json:"avgGoalsAgainst"`
	BTTSRate        json.RawMessage `json:"bttsRate"`
	Over25Rate      json.RawMessage `json:"over25Rate"`
	CleanSheetRate  json.RawMessage `json:"cleanSheetRate"`
	FormString      json.RawMessage `json:"formString"`
}

// ParseTeamSummary decodes a team summary, returning nil when it is absent or
// not an object. Fields are read leniently: an off-type field is left at zero
// without discarding the rest of the summary.
func ParseTeamSummary(raw json.RawMessage) *models.TeamSummary {
	var ws wireSummary
	if !isObject(raw) || json.Unmarshal(raw, &ws) != nil {
		return nil
	}

	return &models.TeamSummary{
		TeamID:          lenientInt(ws.TeamID),
		TeamName:        parseString(ws.TeamName),
		MatchesPlayed:   lenientInt(ws.MatchesPlayed),
		Wins:            lenientInt(ws.Wins),
		Draws:           lenientInt(ws.Draws),
		Losses:          lenientInt(ws.Losses),
		Points:          lenientInt(ws.Points),
		GoalsFor:        lenientInt(ws.GoalsFor),
		GoalsAgainst:    lenientInt(ws.GoalsAgainst),
		AvgGoalsFor:     lenientFloat(ws.AvgGoalsFor),
		AvgGoalsAgainst: lenientFloat(ws.AvgGoalsAgainst),
		BTTSRate:        lenientFloat(ws.BTTSRate),
		Over25Rate:      lenientFloat(ws.Over25Rate),
		CleanSheetRate:  lenientFloat(ws.CleanSheetRate),
		FormString:      strings.ToUpper(parseString(ws.FormString)),
	}
}

func firstSummary(candidates ...json.RawMessage) *models.TeamSummary {
	for _, raw := range candidates {
		if summary := ParseTeamSummary(raw); summary != nil {
			return summary
		}
	}
	return nil
}

// parseScores reads a nested scores object; absent sub-scores stay nil
func parseScores(raw json.RawMessage) (models.CardScores, bool) {
	var ws wireScores
	if !isObject(raw) || json.Unmarshal(raw, &ws) != nil {
		return models.CardScores{}, false
	}
	return ws.scores(), true
}

// completeScores fills the metrics missing from supplied with those computed
// from both summaries. Supplied metrics always win.
func completeScores(supplied models.CardScores, home, away *models.TeamSummary, window int) models.CardScores {
	if home == nil || away == nil {
		return supplied
	}

	computed := Scores(*home, *away, window)
	if supplied.BTTSScore == nil {
		supplied.BTTSScore = &computed.BTTSScore
	}
	if supplied.Over25Score == nil {
		supplied.Over25Score = &computed.Over25Score
	}
	if supplied.FormMismatchScore == nil {
		supplied.FormMismatchScore = &computed.FormMismatchScore
	}
	return supplied
}

// ParseRecentMatches decodes recent-match rows, dropping malformed ones
func ParseRecentMatches(raw json.RawMessage) []models.RecentMatch {
	items := splitList(raw)
	matches := make([]models.RecentMatch, 0, len(items))
	for _, item := range items {
		var match models.RecentMatch
		if err := json.Unmarshal(item, &match); err != nil {
			continue
		}
		match.Result = strings.ToUpper(strings.TrimSpace(match.Result))
		match.HomeAway = strings.ToUpper(strings.TrimSpace(match.HomeAway))
		matches = append(matches, match)
	}
	return matches
}
