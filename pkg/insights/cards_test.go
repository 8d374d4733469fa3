package insights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

const cardFixture = `"matchId": 11, "utcDate": "2024-03-09T15:00:00Z", "homeTeam": "Arsenal", "awayTeam": "Chelsea"`

func TestParseInsightCard_NestedScores(t *testing.T) {
	raw := json.RawMessage(`{` + cardFixture + `,
		"scores": {"bttsScore": 0.6, "over25Score": 0.4}}`)

	card, ok := ParseInsightCard(raw, 5)
	require.True(t, ok)

	assert.Equal(t, int64(11), card.Fixture.MatchID)
	require.NotNil(t, card.Scores.BTTSScore)
	require.NotNil(t, card.Scores.Over25Score)
	assert.Equal(t, 0.6, *card.Scores.BTTSScore)
	assert.Equal(t, 0.4, *card.Scores.Over25Score)
	assert.Nil(t, card.Scores.FormMismatchScore)
	assert.Nil(t, card.HomeSummary)
	assert.Nil(t, card.AwaySummary)
}

func TestParseInsightCard_FlatScores(t *testing.T) {
	raw := json.RawMessage(`{` + cardFixture + `, "formMismatchScore": 0.8}`)

	card, ok := ParseInsightCard(raw, 5)
	require.True(t, ok)

	require.NotNil(t, card.Scores.FormMismatchScore)
	assert.Equal(t, 0.8, *card.Scores.FormMismatchScore)
	assert.Nil(t, card.Scores.BTTSScore)
}

// TestParseInsightCard_PartialScoresDisplay tests that metrics a card does not
// supply render as unavailable rather than 0.00
func TestParseInsightCard_PartialScoresDisplay(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.RateDisplay
	}{
		{
			name: "Only BTTS",
			raw:  `{` + cardFixture + `, "bttsScore": 0.55}`,
			expected: models.RateDisplay{
				BTTS: "0.55", Over25: RankingScoreUnavailable, FormMismatch: RankingScoreUnavailable,
			},
		},
		{
			name: "No scores",
			raw:  `{` + cardFixture + `}`,
			expected: models.RateDisplay{
				BTTS: RankingScoreUnavailable, Over25: RankingScoreUnavailable, FormMismatch: RankingScoreUnavailable,
			},
		},
		{
			name: "Non-numeric score",
			raw:  `{` + cardFixture + `, "scores": {"bttsScore": "high", "over25Score": 0}}`,
			expected: models.RateDisplay{
				BTTS: RankingScoreUnavailable, Over25: "0.00", FormMismatch: RankingScoreUnavailable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, ok := ParseInsightCard(json.RawMessage(tt.raw), 5)
			require.True(t, ok)
			assert.Equal(t, tt.expected, FormatCardRates(card.Scores))
		})
	}
}

func TestParseInsightCard_ComputedFromFormAliases(t *testing.T) {
	raw := json.RawMessage(`{` + cardFixture + `,
		"homeForm": {"points": 13, "bttsRate": 0.6, "over25Rate": 0.8, "formString": "wwwdl"},
		"awayForm": {"points": 4, "bttsRate": 0.4, "over25Rate": 0.2}}`)

	card, ok := ParseInsightCard(raw, 5)
	require.True(t, ok)
	require.NotNil(t, card.HomeSummary)
	require.NotNil(t, card.AwaySummary)

	assert.Equal(t, "WWWDL", card.HomeSummary.FormString)
	require.NotNil(t, card.Scores.BTTSScore)
	assert.InDelta(t, 0.5, *card.Scores.BTTSScore, 1e-9)
	assert.InDelta(t, 0.5, *card.Scores.Over25Score, 1e-9)
	assert.InDelta(t, 0.6, *card.Scores.FormMismatchScore, 1e-9)
}

// TestParseInsightCard_SuppliedScoresWinOverSummaries tests that summaries only
// fill the metrics the card leaves out
func TestParseInsightCard_SuppliedScoresWinOverSummaries(t *testing.T) {
	raw := json.RawMessage(`{` + cardFixture + `,
		"homeSummary": {"bttsRate": 1, "over25Rate": 0.6}, "awaySummary": {"bttsRate": 1, "over25Rate": 0.2},
		"bttsScore": 0.1}`)

	card, ok := ParseInsightCard(raw, 5)
	require.True(t, ok)

	require.NotNil(t, card.Scores.BTTSScore)
	assert.Equal(t, 0.1, *card.Scores.BTTSScore)
	require.NotNil(t, card.Scores.Over25Score)
	assert.InDelta(t, 0.4, *card.Scores.Over25Score, 1e-9)
	require.NotNil(t, card.Scores.FormMismatchScore)
	assert.Zero(t, *card.Scores.FormMismatchScore)
}

// TestParseInsightCard_OffTypeSummaryFields tests that one off-type field does
// not discard the summary or the scores computed from it
func TestParseInsightCard_OffTypeSummaryFields(t *testing.T) {
	raw := json.RawMessage(`{` + cardFixture + `,
		"homeSummary": {"matchesPlayed": 5.0, "points": "12", "bttsRate": 0.8, "over25Rate": "0.6"},
		"awaySummary": {"matchesPlayed": "five", "points": 3, "bttsRate": 0.6, "over25Rate": 0.4}}`)

	card, ok := ParseInsightCard(raw, 5)
	require.True(t, ok)
	require.NotNil(t, card.HomeSummary)
	require.NotNil(t, card.AwaySummary)

	assert.Equal(t, 5, card.HomeSummary.MatchesPlayed)
	assert.Equal(t, 12, card.HomeSummary.Points)
	assert.Equal(t, 0.6, card.HomeSummary.Over25Rate)
	assert.Zero(t, card.AwaySummary.MatchesPlayed)

	assert.Equal(t, models.RateDisplay{BTTS: "0.70", Over25: "0.50", FormMismatch: "0.60"}, FormatCardRates(card.Scores))
}

func TestParseInsightCards_DropsInvalid(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(`{` + cardFixture + `}`),
		json.RawMessage(`{"matchId": 0, "utcDate": "2024-03-09T15:00:00Z"}`),
		json.RawMessage(`"not a card"`),
	}

	cards := ParseInsightCards(items, 5)
	require.Len(t, cards, 1)
	assert.Equal(t, int64(11), cards[0].Fixture.MatchID)
}

func TestParseTeamSummary(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{name: "Object", raw: `{"teamId": 57, "formString": " wdl "}`, expected: true},
		{name: "Missing", raw: ``, expected: false},
		{name: "Null", raw: `null`, expected: false},
		{name: "Array", raw: `[1, 2]`, expected: false},
		{name: "String", raw: `"summary"`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ParseTeamSummary(json.RawMessage(tt.raw))
			if !tt.expected {
				assert.Nil(t, summary)
				return
			}
			require.NotNil(t, summary)
			assert.Equal(t, 57, summary.TeamID)
			assert.Equal(t, "WDL", summary.FormString)
		})
	}
}

func TestParseTeamSummary_Lenient(t *testing.T) {
	summary := ParseTeamSummary(json.RawMessage(`{
		"teamId": "57", "teamName": " Arsenal ", "points": "ten", "wins": 4.0,
		"goalsFor": 9, "avgGoalsFor": "1.8", "bttsRate": null, "cleanSheetRate": 0.4}`))

	require.NotNil(t, summary)
	assert.Equal(t, 57, summary.TeamID)
	assert.Equal(t, "Arsenal", summary.TeamName)
	assert.Zero(t, summary.Points)
	assert.Equal(t, 4, summary.Wins)
	assert.Equal(t, 9, summary.GoalsFor)
	assert.Equal(t, 1.8, summary.AvgGoalsFor)
	assert.Zero(t, summary.BTTSRate)
	assert.Equal(t, 0.4, summary.CleanSheetRate)
}

func TestParseRecentMatches(t *testing.T) {
	raw := json.RawMessage(`[
		{"date": "2024-03-02", "opponentName": "Spurs", "homeAway": "h", "scoreFor": 2, "scoreAgainst": 1, "result": "w"},
		{"date": "2024-02-24", "scoreFor": "two"},
		{"date": "2024-02-17", "opponentName": "Fulham", "homeAway": "A", "scoreFor": 0, "scoreAgainst": 0, "result": "D"}
	]`)

	matches := ParseRecentMatches(raw)
	require.Len(t, matches, 2)

	assert.Equal(t, "Spurs", matches[0].OpponentName)
	assert.Equal(t, "H", matches[0].HomeAway)
	assert.Equal(t, "W", matches[0].Result)
	assert.Equal(t, "Fulham", matches[1].OpponentName)

	assert.Empty(t, ParseRecentMatches(json.RawMessage(`{"not": "a list"}`)))
}
