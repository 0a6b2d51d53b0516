package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TornBot_Go/internal/database/generated"
	"github.com/osse101/TornBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// txHelper wraps common transaction begin logic.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(ctx context.Context) error {
	return h.tx.Commit(ctx)
}

// Tx returns the underlying transaction for SafeRollback
func (h *txHelper) Tx() pgx.Tx {
	return h.tx
}

// Queries returns the transaction-bound queries
func (h *txHelper) Queries() *generated.Queries {
	return h.q
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int8ToPtr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func ptrToInt8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *i, Valid: true}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
