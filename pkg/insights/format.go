package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// ScorePlaceholder is shown whenever there is no real score to display
const ScorePlaceholder = "—"

// RankingScoreUnavailable is shown for ranking entries without a score
const RankingScoreUnavailable = "N/A"

const (
	kickoffLayout     = "3:04 PM"
	kickoffLongLayout = "Mon, Jan 2, 3:04 PM"
	dateHeadingLayout = "Monday, January 2"
)

// FormatKickoff renders the kickoff as a 12-hour clock time in loc, e.g.
// "2:30 PM". Unparseable kickoffs render as "".
func FormatKickoff(fixture models.Fixture, loc *time.Location) string {
	return formatKickoff(fixture, loc, kickoffLayout)
}

// FormatKickoffLong renders weekday, date and time, e.g. "Sat, Mar 9, 11:30 PM"
func FormatKickoffLong(fixture models.Fixture, loc *time.Location) string {
	return formatKickoff(fixture, loc, kickoffLongLayout)
}

func formatKickoff(fixture models.Fixture, loc *time.Location, layout string) string {
	kickoff, ok := kickoffOf(fixture)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return kickoff.In(loc).Format(layout)
}

// FormatDateHeading renders a bucket key as "Saturday, March 9". Keys that
// are not dates are returned unchanged.
func FormatDateHeading(dateKey string) string {
	day, err := time.Parse(DateLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return day.Format(dateHeadingLayout)
}

// ShowsScore reports whether a status carries a real result
func ShowsScore(status string) bool {
	switch NormalizeStatus(status) {
	case models.StatusFinished, models.StatusLive, models.StatusInPlay:
		return true
	default:
		return false
	}
}

// FormatScore renders "home–away" for finished or live fixtures with both
// sides present, and the placeholder otherwise, so a missing score never
// reads as 0–0
func FormatScore(status string, score models.Score) string {
	if !score.Complete() || !ShowsScore(status) {
		return ScorePlaceholder
	}
	return fmt.Sprintf("%d–%d", *score.Home, *score.Away)
}

// FormatRate rounds a [0,1] rate to two decimals, e.g. 0.7 -> "0.70"
func FormatRate(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// FormatOptionalRate renders a rate, or RankingScoreUnavailable when absent
func FormatOptionalRate(value *float64) string {
	if value == nil {
		return RankingScoreUnavailable
	}
	return FormatRate(*value)
}

// FormatRankingScore renders a ranking score or RankingScoreUnavailable
func FormatRankingScore(score *float64) string {
	return FormatOptionalRate(score)
}

// FormatRates renders the headline metrics for display
func FormatRates(scores models.InsightScores) models.RateDisplay {
	return models.RateDisplay{
		BTTS:         FormatRate(scores.BTTSScore),
		Over25:       FormatRate(scores.Over25Score),
		FormMismatch: FormatRate(scores.FormMismatchScore),
	}
}

// FormatCardRates renders card metrics, marking absent ones unavailable so a
// missing metric never reads as 0.00
func FormatCardRates(scores models.CardScores) models.RateDisplay {
	return models.RateDisplay{
		BTTS:         FormatOptionalRate(scores.BTTSScore),
		Over25:       FormatOptionalRate(scores.Over25Score),
		FormMismatch: FormatOptionalRate(scores.FormMismatchScore),
	}
}

// FormTokens splits a form string into single-result tokens, most recent first
func FormTokens(form string) []string {
	form = strings.TrimSpace(form)
	tokens := make([]string, 0, len(form))
	for _, result := range form {
		if isFormSeparator(result) {
			continue
		}
		tokens = append(tokens, strings.ToUpper(string(result)))
	}
	return tokens
}

func isFormSeparator(r rune) bool {
	return r == ' ' || r == ','
}

// TeamsLabel renders "Home vs Away"
func TeamsLabel(fixture models.Fixture) string {
	return fixture.HomeTeam.Name + " vs " + fixture.AwayTeam.Name
}

// Row attaches display strings to a fixture
func Row(fixture models.Fixture, loc *time.Location) models.FixtureRow {
	return models.FixtureRow{
		Fixture:      fixture,
		KickoffLocal: FormatKickoff(fixture, loc),
		ScoreDisplay: FormatScore(fixture.Status, fixture.Score),
	}
}
