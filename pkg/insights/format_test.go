package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// TestFormatScore tests score display across statuses
func TestFormatScore(t *testing.T) {
	complete := models.Score{Home: intPtr(2), Away: intPtr(1)}
	nilNil := models.Score{}
	partial := models.Score{Home: intPtr(1)}
	zeroZero := models.Score{Home: intPtr(0), Away: intPtr(0)}

	tests := []struct {
		name     string
		status   string
		score    models.Score
		expected string
	}{
		{name: "Scheduled without score", status: "SCHEDULED", score: nilNil, expected: "—"},
		{name: "Finished", status: "FINISHED", score: complete, expected: "2–1"},
		{name: "Live", status: "LIVE", score: complete, expected: "2–1"},
		{name: "In play", status: "IN_PLAY", score: zeroZero, expected: "0–0"},
		{name: "Finished without score", status: "FINISHED", score: nilNil, expected: "—"},
		{name: "Finished with partial score", status: "FINISHED", score: partial, expected: "—"},
		{name: "Postponed with score", status: "POSTPONED", score: zeroZero, expected: "—"},
		{name: "Scheduled with score", status: "SCHEDULED", score: complete, expected: "—"},
		{name: "Lowercase status", status: "finished", score: complete, expected: "2–1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatScore(tt.status, tt.score))
		})
	}
}

// TestFormatKickoff tests local kickoff rendering
func TestFormatKickoff(t *testing.T) {
	loc := newYork(t)

	assert.Equal(t, "11:30 PM", FormatKickoff(fixtureAt(1, "2024-03-10T04:30:00Z"), loc))
	assert.Equal(t, "2:30 PM", FormatKickoff(fixtureAt(1, "2024-07-06T18:30:00Z"), loc))
	assert.Equal(t, "Sat, Mar 9, 11:30 PM", FormatKickoffLong(fixtureAt(1, "2024-03-10T04:30:00Z"), loc))
	assert.Equal(t, "", FormatKickoff(fixtureAt(1, "tbc"), loc))
	assert.Equal(t, "4:30 AM", FormatKickoff(fixtureAt(1, "2024-03-10T04:30:00Z"), nil))
}

// TestFormatRate tests two-decimal rendering
func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.70", FormatRate(0.7))
	assert.Equal(t, "0.60", FormatRate(9.0/15.0))
	assert.Equal(t, "0.33", FormatRate(1.0/3.0))
	assert.Equal(t, "1.00", FormatRate(1))
	assert.Equal(t, "0.00", FormatRate(0))
}

// TestFormatRankingScore tests unavailable scores stay distinct from zero
func TestFormatRankingScore(t *testing.T) {
	zero := 0.0
	score := 0.734

	assert.Equal(t, "N/A", FormatRankingScore(nil))
	assert.Equal(t, "0.00", FormatRankingScore(&zero))
	assert.Equal(t, "0.73", FormatRankingScore(&score))
}

// TestFormTokens tests form string splitting
func TestFormTokens(t *testing.T) {
	assert.Equal(t, []string{"W", "D", "L", "W"}, FormTokens("WDLW"))
	assert.Equal(t, []string{"W", "L"}, FormTokens(" w,l "))
	assert.Empty(t, FormTokens(""))
}

// TestFormatDateHeading tests bucket headings
func TestFormatDateHeading(t *testing.T) {
	assert.Equal(t, "Saturday, March 9", FormatDateHeading("2024-03-09"))
	assert.Equal(t, "TBD", FormatDateHeading(UnscheduledDateKey))
}

// TestRow tests display strings attached to a fixture
func TestRow(t *testing.T) {
	fixture := fixtureAt(1, "2024-07-06T18:30:00Z")
	fixture.Status = models.StatusFinished
	fixture.Score = models.Score{Home: intPtr(3), Away: intPtr(3)}

	row := Row(fixture, newYork(t))

	assert.Equal(t, "2:30 PM", row.KickoffLocal)
	assert.Equal(t, "3–3", row.ScoreDisplay)
	assert.Equal(t, fixture, row.Fixture)
	assert.Equal(t, "Home vs Away", TeamsLabel(fixture))
}
