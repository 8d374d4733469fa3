package service

import (
	"context"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_cache.go -package=mocks github.com/cypherlabdev/fixture-insights-service/internal/service Cache

// Cache is an interface that abstracts view cache operations
// This allows for easier testing and mocking
type Cache interface {
	SetView(ctx context.Context, kind, key string, view any) error
	GetView(ctx context.Context, kind, key string, dst any) error
	SetViews(ctx context.Context, entries []models.ViewEntry) error
	ListKeys(ctx context.Context, kind string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
