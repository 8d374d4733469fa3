package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
	"github.com/cypherlabdev/fixture-insights-service/internal/service"
	"github.com/cypherlabdev/fixture-insights-service/pkg/insights"
)

const maxBodyBytes = 1 << 20

// InsightService is the subset of the insight service the handler serves
type InsightService interface {
	GetDashboard(ctx context.Context, date string) (*models.DashboardView, error)
	GetUpcoming(ctx context.Context, rangeKey string) (*models.UpcomingView, error)
	GetPreview(ctx context.Context, matchID int64) (*models.MatchPreviewView, error)
	GetTeamInsights(ctx context.Context, teamID int) (*models.TeamInsightsView, error)
	ListDashboardDates(ctx context.Context) ([]string, error)
	ComputeScores(home, away models.TeamSummary, window int) models.ScoresResult
	BucketFixtures(raw []json.RawMessage, tz string) ([]models.DateBucket, int, error)
}

// InsightsHandler handles HTTP requests for fixture insights
type InsightsHandler struct {
	service   InsightService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewInsightsHandler creates a new insights HTTP handler
func NewInsightsHandler(service InsightService, logger zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger.With().Str("component", "insights_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *InsightsHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/dashboard/ and /api/v1/dashboard/:date
	mux.HandleFunc("/api/v1/dashboard/", h.handleDashboard)

	// GET /api/v1/upcoming/:range
	mux.HandleFunc("/api/v1/upcoming/", h.handleUpcoming)

	// GET /api/v1/matches/:match_id/preview
	mux.HandleFunc("/api/v1/matches/", h.handleMatchPreview)

	// GET /api/v1/teams/:team_id/insights
	mux.HandleFunc("/api/v1/teams/", h.handleTeamInsights)

	// POST /api/v1/insights/scores
	mux.HandleFunc("/api/v1/insights/scores", h.handleComputeScores)

	// POST /api/v1/fixtures/buckets?tz=
	mux.HandleFunc("/api/v1/fixtures/buckets", h.handleBucketFixtures)
}

// handleDashboard handles GET /api/v1/dashboard/:date, listing cached dates when no date is given
func (h *InsightsHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/dashboard/"), "/")
	if date == "" {
		dates, err := h.service.ListDashboardDates(r.Context())
		if err != nil {
			h.serviceError(w, err, "failed to list dashboards")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]any{
			"count": len(dates),
			"dates": dates,
		})
		return
	}

	if _, err := time.Parse(insights.DateLayout, date); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid date: expected YYYY-MM-DD")
		return
	}

	view, err := h.service.GetDashboard(r.Context(), date)
	if err != nil {
		h.serviceError(w, err, "failed to retrieve dashboard")
		return
	}

	h.jsonResponse(w, http.StatusOK, view)
}

// handleUpcoming handles GET /api/v1/upcoming/:range
func (h *InsightsHandler) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rangeKey := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/upcoming/"), "/")
	if rangeKey == "" {
		rangeKey = models.RangeNext7
	}

	view, err := h.service.GetUpcoming(r.Context(), rangeKey)
	if err != nil {
		h.serviceError(w, err, "failed to retrieve upcoming fixtures")
		return
	}

	h.jsonResponse(w, http.StatusOK, view)
}

// handleMatchPreview handles GET /api/v1/matches/:match_id/preview
func (h *InsightsHandler) handleMatchPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/matches/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "preview" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/matches/:match_id/preview")
		return
	}

	matchID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || matchID <= 0 {
		h.errorResponse(w, http.StatusBadRequest, "match_id must be a positive integer")
		return
	}

	view, err := h.service.GetPreview(r.Context(), matchID)
	if err != nil {
		h.serviceError(w, err, "failed to retrieve match preview")
		return
	}

	h.jsonResponse(w, http.StatusOK, view)
}

// handleTeamInsights handles GET /api/v1/teams/:team_id/insights
func (h *InsightsHandler) handleTeamInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/teams/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "insights" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/teams/:team_id/insights")
		return
	}

	teamID, err := strconv.Atoi(parts[0])
	if err != nil || teamID <= 0 {
		h.errorResponse(w, http.StatusBadRequest, "team_id must be a positive integer")
		return
	}

	view, err := h.service.GetTeamInsights(r.Context(), teamID)
	if err != nil {
		h.serviceError(w, err, "failed to retrieve team insights")
		return
	}

	h.jsonResponse(w, http.StatusOK, view)
}

// handleComputeScores handles POST /api/v1/insights/scores
func (h *InsightsHandler) handleComputeScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req scoresRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.service.ComputeScores(req.Home.toSummary(), req.Away.toSummary(), req.Window)
	h.jsonResponse(w, http.StatusOK, result)
}

// handleBucketFixtures handles POST /api/v1/fixtures/buckets?tz=
func (h *InsightsHandler) handleBucketFixtures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req bucketsRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tz := r.URL.Query().Get("tz")
	buckets, dropped, err := h.service.BucketFixtures(req.Fixtures, tz)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]any{
		"count":   len(buckets),
		"dropped": dropped,
		"buckets": buckets,
	})
}

// decodeRequest decodes a JSON body into payload and validates it
func (h *InsightsHandler) decodeRequest(w http.ResponseWriter, r *http.Request, payload any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(payload); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := h.validator.StructCtx(r.Context(), payload); err != nil {
		return fmt.Errorf("validation failed: %v", err)
	}

	return nil
}

// serviceError maps service errors to HTTP status codes
func (h *InsightsHandler) serviceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		h.logger.Debug().Err(err).Msg("view not found")
		h.errorResponse(w, http.StatusNotFound, "view not found")
	case errors.Is(err, service.ErrInvalidRange):
		h.errorResponse(w, http.StatusBadRequest, "invalid range: expected today, tomorrow, weekend or next7")
	default:
		h.logger.Error().Err(err).Msg(message)
		h.errorResponse(w, http.StatusInternalServerError, message)
	}
}

// jsonResponse writes a JSON response
func (h *InsightsHandler) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *InsightsHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// summaryRequest is the team summary accepted by the scores endpoint
type summaryRequest struct {
	TeamName       string  `json:"teamName" validate:"omitempty,max=100"`
	Points         int     `json:"points" validate:"gte=0"`
	BTTSRate       float64 `json:"bttsRate" validate:"gte=0,lte=1"`
	Over25Rate     float64 `json:"over25Rate" validate:"gte=0,lte=1"`
	CleanSheetRate float64 `json:"cleanSheetRate" validate:"gte=0,lte=1"`
	FormString     string  `json:"formString" validate:"omitempty,max=38"`
}

func (s *summaryRequest) toSummary() models.TeamSummary {
	return models.TeamSummary{
		TeamName:       s.TeamName,
		Points:         s.Points,
		BTTSRate:       s.BTTSRate,
		Over25Rate:     s.Over25Rate,
		CleanSheetRate: s.CleanSheetRate,
		FormString:     strings.ToUpper(s.FormString),
	}
}

// scoresRequest is the body of POST /api/v1/insights/scores
type scoresRequest struct {
	Home   *summaryRequest `json:"home" validate:"required"`
	Away   *summaryRequest `json:"away" validate:"required"`
	Window int             `json:"window" validate:"omitempty,min=1,max=38"`
}

// bucketsRequest is the body of POST /api/v1/fixtures/buckets
type bucketsRequest struct {
	Fixtures []json.RawMessage `json:"fixtures" validate:"required,max=1000"`
}
