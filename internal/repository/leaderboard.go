package repository

import (
	"context"

	"github.com/osse101/TornBot_Go/internal/domain"
)

// Leaderboard defines the interface for attack dedup, aggregates and sync metadata
type Leaderboard interface {
	// ApplyAttack stores a never-seen attack and bumps its attacker's totals in one
	// transaction, returning true. A known attack is merged without clobbering
	// stored values with missing ones, and false is returned.
	ApplyAttack(ctx context.Context, a domain.Attack) (bool, error)
	GetAttack(ctx context.Context, id int64) (*domain.Attack, error)

	GetMeta(ctx context.Context, key string) (string, bool, error)
	SetMeta(ctx context.Context, key, value string) error
	// AdvanceMetaIfGreater stores value only when the key is absent or holds a smaller number.
	AdvanceMetaIfGreater(ctx context.Context, key string, value int64) (bool, error)
	// LowerMetaIfLess stores value only when the key is absent or holds a larger number.
	LowerMetaIfLess(ctx context.Context, key string, value int64) (bool, error)

	GetActorTotals(ctx context.Context, attackerID int64) (*domain.ActorTotals, error)
	TopBy(ctx context.Context, column domain.LeaderboardColumn) (*domain.LeaderRow, error)
	TotalMugged(ctx context.Context) (float64, error)

	Ping(ctx context.Context) error
}
