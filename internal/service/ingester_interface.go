package service

import (
	"context"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_ingester.go -package=mocks github.com/cypherlabdev/fixture-insights-service/internal/service Ingester

// Ingester turns upstream messages into cached views
type Ingester interface {
	IngestMessage(ctx context.Context, msg models.UpstreamMessage) error
	IngestBatch(ctx context.Context, batch models.UpstreamBatch) (models.IngestResult, error)
}
