// Package sqlite implements the stores on a single-writer SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/TornBot_Go/internal/attacks"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
)

// LeaderboardRepository implements the attack store for SQLite
type LeaderboardRepository struct {
	db *sql.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository on a migrated database
func NewLeaderboardRepository(db *sql.DB) attacks.Repository {
	return &LeaderboardRepository{db: db}
}

func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

func (r *LeaderboardRepository) ApplyAttack(ctx context.Context, a domain.Attack) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, domain.NewStoreError(opBeginTx, err)
	}
	defer safeRollback(ctx, tx)

	res, err := tx.ExecContext(ctx, insertAttack,
		a.ID, a.Started, nullInt(a.Ended), a.AttackerID, nullString(a.AttackerName),
		nullInt(a.DefenderID), nullString(a.DefenderName), nullString(a.Result),
		a.RespectGain, a.RespectLoss, a.Mugged, a.Tags.String(), nullRaw(a.Raw))
	if err != nil {
		return false, domain.NewStoreError(opApplyAttack, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewStoreError(opApplyAttack, err)
	}

	inserted := n > 0
	if inserted {
		_, err = tx.ExecContext(ctx, bumpActorTotals,
			a.AttackerID, boolToInt(a.Tags.Has(domain.TagMug)), boolToInt(a.Tags.Has(domain.TagHospitalize)),
			a.RespectGain, a.RespectLoss, a.Mugged)
	} else {
		_, err = tx.ExecContext(ctx, mergeAttack,
			nullInt(a.Ended), nullString(a.AttackerName), nullInt(a.DefenderID),
			nullString(a.DefenderName), nullString(a.Result), nullRaw(a.Raw), a.ID)
	}
	if err != nil {
		return false, domain.NewStoreError(opApplyAttack, err)
	}

	if err := tx.Commit(); err != nil {
		return false, domain.NewStoreError(opCommitTx, err)
	}
	return inserted, nil
}

func (r *LeaderboardRepository) GetAttack(ctx context.Context, id int64) (*domain.Attack, error) {
	var (
		a                                  domain.Attack
		ended, defenderID                  sql.NullInt64
		attackerName, defenderName, result sql.NullString
		raw                                sql.NullString
		tags                               string
	)
	err := r.db.QueryRowContext(ctx, getAttack, id).Scan(
		&a.ID, &a.Started, &ended, &a.AttackerID, &attackerName, &defenderID, &defenderName,
		&result, &a.RespectGain, &a.RespectLoss, &a.Mugged, &tags, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opGetAttack, err)
	}

	a.Ended = intPtr(ended)
	a.DefenderID = intPtr(defenderID)
	a.AttackerName = stringPtr(attackerName)
	a.DefenderName = stringPtr(defenderName)
	a.Result = stringPtr(result)
	a.Tags = domain.ParseTagSet(tags)
	if raw.Valid {
		a.Raw = json.RawMessage(raw.String)
	}
	return &a, nil
}

func (r *LeaderboardRepository) GetMeta(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, getMeta, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.NewStoreError(opGetMeta, err)
	}
	return v, true, nil
}

func (r *LeaderboardRepository) SetMeta(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, setMeta, key, value)
	return domain.NewStoreError(opSetMeta, err)
}

func (r *LeaderboardRepository) AdvanceMetaIfGreater(ctx context.Context, key string, value int64) (bool, error) {
	return r.casMeta(ctx, opAdvanceMeta, advanceMetaIfGreater, key, value)
}

func (r *LeaderboardRepository) LowerMetaIfLess(ctx context.Context, key string, value int64) (bool, error) {
	return r.casMeta(ctx, opLowerMeta, lowerMetaIfLess, key, value)
}

func (r *LeaderboardRepository) casMeta(ctx context.Context, op, query, key string, value int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, key, strconv.FormatInt(value, 10))
	if err != nil {
		return false, domain.NewStoreError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewStoreError(op, err)
	}
	return n > 0, nil
}

func (r *LeaderboardRepository) GetActorTotals(ctx context.Context, attackerID int64) (*domain.ActorTotals, error) {
	var t domain.ActorTotals
	err := r.db.QueryRowContext(ctx, getActorTotals, attackerID).Scan(
		&t.AttackerID, &t.Attacks, &t.Mugs, &t.Hospitalizations,
		&t.RespectGain, &t.RespectLoss, &t.Mugged, &t.BestMug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opGetTotals, err)
	}
	return &t, nil
}

func (r *LeaderboardRepository) TopBy(ctx context.Context, column domain.LeaderboardColumn) (*domain.LeaderRow, error) {
	query, ok := topByQueries[column]
	if !ok {
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownColumn, column)
	}

	var row domain.LeaderRow
	err := r.db.QueryRowContext(ctx, query).Scan(&row.AttackerID, &row.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opTopBy, err)
	}
	return &row, nil
}

func (r *LeaderboardRepository) TotalMugged(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, sumMugged).Scan(&total); err != nil {
		return 0, domain.NewStoreError(opTotalMugged, err)
	}
	return total, nil
}

func (r *LeaderboardRepository) Ping(ctx context.Context) error {
	return domain.NewStoreError(opPing, r.db.PingContext(ctx))
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullRaw(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
