package insights

import (
	"math"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// Points awarded per result when converting form into points
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// BTTSScore is the mean of both teams' both-teams-to-score rates
func BTTSScore(home, away models.TeamSummary) float64 {
	return (home.BTTSRate + away.BTTSRate) / 2
}

// Over25Score is the mean of both teams' over-2.5-goals rates
func Over25Score(home, away models.TeamSummary) float64 {
	return (home.Over25Rate + away.Over25Rate) / 2
}

// CleanSheetScore is the mean of both teams' clean-sheet rates
func CleanSheetScore(home, away models.TeamSummary) float64 {
	return (home.CleanSheetRate + away.CleanSheetRate) / 2
}

// FormMismatchScore is |homePoints - awayPoints| / (3 * window). Both point
// totals must cover the same window; that is not checked here. A non-positive
// window yields 0 and the result is clamped into [0,1].
func FormMismatchScore(homePoints, awayPoints, window int) float64 {
	if window <= 0 {
		return 0
	}

	score := math.Abs(float64(homePoints-awayPoints)) / float64(PointsWin*window)
	return math.Min(1, score)
}

// FormPoints converts a most-recent-first W/D/L form string into points over
// its first window results. Separators are skipped and unknown symbols score
// nothing.
func FormPoints(form string, window int) int {
	points, seen := 0, 0
	for _, result := range form {
		if isFormSeparator(result) {
			continue
		}
		if window > 0 && seen == window {
			break
		}
		seen++
		switch result {
		case 'W', 'w':
			points += PointsWin
		case 'D', 'd':
			points += PointsDraw
		default:
			points += PointsLoss
		}
	}
	return points
}

// SummaryPoints returns the summary's points, derived from its form string
// when the upstream left points unset
func SummaryPoints(summary models.TeamSummary, window int) int {
	if summary.Points == 0 && summary.FormString != "" {
		return FormPoints(summary.FormString, window)
	}
	return summary.Points
}

// Scores computes the three headline metrics for a fixture from the two
// teams' summaries over the same trailing window
func Scores(home, away models.TeamSummary, window int) models.InsightScores {
	return models.InsightScores{
		BTTSScore:         BTTSScore(home, away),
		Over25Score:       Over25Score(home, away),
		FormMismatchScore: FormMismatchScore(SummaryPoints(home, window), SummaryPoints(away, window), window),
	}
}
