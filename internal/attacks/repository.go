package attacks

import (
	"context"

	"github.com/osse101/TornBot_Go/internal/repository"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// Repository defines the data access interface for attack aggregation
type Repository interface {
	repository.Leaderboard
}

// Upstream is the part of the Torn client the service needs
type Upstream interface {
	FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]torn.Attack, error)
	FetchAttacksSince(ctx context.Context, apiKey string, since int64, maxPages, pageSize int) ([]torn.Attack, error)
}
