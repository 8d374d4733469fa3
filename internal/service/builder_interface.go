package service

import (
	"encoding/json"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
	"github.com/cypherlabdev/fixture-insights-service/pkg/insights"
)

//go:generate mockgen -destination=../mocks/mock_builder.go -package=mocks github.com/cypherlabdev/fixture-insights-service/internal/service Builder

// Builder is an interface that abstracts view building from upstream payloads
// This allows for easier testing and mocking
type Builder interface {
	BuildDashboard(date string, raw json.RawMessage) (*models.DashboardView, insights.Report, error)
	BuildUpcoming(rangeKey string, raw json.RawMessage) (*models.UpcomingView, insights.Report, error)
	BuildPreview(raw json.RawMessage) (*models.MatchPreviewView, insights.Report, error)
	BuildTeamInsights(raw json.RawMessage) (*models.TeamInsightsView, insights.Report, error)
	Params() insights.Params
}
