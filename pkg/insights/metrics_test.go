package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

func summary(btts, over25, cleanSheet float64, points int) models.TeamSummary {
	return models.TeamSummary{
		MatchesPlayed:  5,
		Points:         points,
		BTTSRate:       btts,
		Over25Rate:     over25,
		CleanSheetRate: cleanSheet,
	}
}

// TestAverageScores tests the averaged metrics against worked examples
func TestAverageScores(t *testing.T) {
	home := summary(0.8, 0.6, 0.4, 12)
	away := summary(0.6, 0.8, 0.6, 3)

	assert.InDelta(t, 0.70, BTTSScore(home, away), 1e-12)
	assert.InDelta(t, 0.70, Over25Score(home, away), 1e-12)
	assert.InDelta(t, 0.50, CleanSheetScore(home, away), 1e-12)
}

// TestAverageScores_Symmetric tests that swapping home and away changes nothing
func TestAverageScores_Symmetric(t *testing.T) {
	pairs := [][2]models.TeamSummary{
		{summary(0.8, 0.6, 0.4, 12), summary(0.6, 0.8, 0.6, 3)},
		{summary(0, 1, 0.2, 0), summary(1, 0, 0.8, 15)},
		{summary(0.33, 0.67, 0.1, 7), summary(0.2, 0.4, 0, 9)},
	}

	for _, pair := range pairs {
		home, away := pair[0], pair[1]
		assert.Equal(t, BTTSScore(home, away), BTTSScore(away, home))
		assert.Equal(t, Over25Score(home, away), Over25Score(away, home))
		assert.Equal(t, CleanSheetScore(home, away), CleanSheetScore(away, home))
		assert.Equal(t, FormMismatchScore(home.Points, away.Points, 5), FormMismatchScore(away.Points, home.Points, 5))
	}
}

// TestAverageScores_ZeroMatches tests summaries with no matches played
func TestAverageScores_ZeroMatches(t *testing.T) {
	empty := models.TeamSummary{}
	other := summary(0.5, 0.5, 0.5, 6)

	assert.Equal(t, 0.25, BTTSScore(empty, other))
	assert.Equal(t, 0.0, BTTSScore(empty, empty))
}

// TestFormMismatchScore tests the worked example and edge cases
func TestFormMismatchScore(t *testing.T) {
	assert.Equal(t, 0.6, FormMismatchScore(12, 3, 5))
	assert.Equal(t, 0.6, FormMismatchScore(3, 12, 5))
	assert.Equal(t, 0.0, FormMismatchScore(7, 7, 5))
	assert.Equal(t, 1.0, FormMismatchScore(15, 0, 5))
	assert.Equal(t, 1.0, FormMismatchScore(30, 0, 10))
	assert.Equal(t, 0.0, FormMismatchScore(12, 3, 0))
	assert.Equal(t, 0.0, FormMismatchScore(12, 3, -1))
	assert.Equal(t, 1.0, FormMismatchScore(40, 0, 5))
}

// TestFormMismatchScore_Range tests the [0,1] bound over all valid inputs
func TestFormMismatchScore_Range(t *testing.T) {
	for _, window := range []int{1, 5, 10} {
		for home := 0; home <= 3*window; home++ {
			for away := 0; away <= 3*window; away++ {
				score := FormMismatchScore(home, away, window)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	}
}

// TestFormPoints tests form string conversion
func TestFormPoints(t *testing.T) {
	tests := []struct {
		name     string
		form     string
		window   int
		expected int
	}{
		{name: "Mixed", form: "WWDLW", window: 5, expected: 10},
		{name: "Truncated to window", form: "WWWWWLLLLL", window: 5, expected: 15},
		{name: "Shorter than window", form: "WD", window: 5, expected: 4},
		{name: "Lowercase", form: "wdl", window: 5, expected: 4},
		{name: "Empty", form: "", window: 5, expected: 0},
		{name: "No window limit", form: "WWWWWW", window: 0, expected: 18},
		{name: "Comma separated", form: "W,W,W", window: 3, expected: 9},
		{name: "Space separated past window", form: "W D L W", window: 3, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormPoints(tt.form, tt.window))
		})
	}
}

// TestSummaryPoints tests the form string fallback for summaries without points
func TestSummaryPoints(t *testing.T) {
	assert.Equal(t, 12, SummaryPoints(models.TeamSummary{Points: 12, FormString: "LLLLL"}, 5))
	assert.Equal(t, 9, SummaryPoints(models.TeamSummary{FormString: "W,W,W,L,L,W"}, 5))
	assert.Equal(t, 0, SummaryPoints(models.TeamSummary{}, 5))
}

// TestScores_FormStringFallback tests mismatch from form strings when points are unset
func TestScores_FormStringFallback(t *testing.T) {
	home := models.TeamSummary{FormString: "WWWDW"}
	away := models.TeamSummary{FormString: "LLDLL"}

	scores := Scores(home, away, 5)

	assert.InDelta(t, 0.8, scores.FormMismatchScore, 1e-12)
	assert.Equal(t, scores.FormMismatchScore, Scores(away, home, 5).FormMismatchScore)
}

// TestScores tests the combined score computation
func TestScores(t *testing.T) {
	scores := Scores(summary(0.8, 0.6, 0.4, 12), summary(0.6, 0.8, 0.6, 3), 5)

	assert.InDelta(t, 0.70, scores.BTTSScore, 1e-12)
	assert.InDelta(t, 0.70, scores.Over25Score, 1e-12)
	assert.Equal(t, 0.6, scores.FormMismatchScore)
}
