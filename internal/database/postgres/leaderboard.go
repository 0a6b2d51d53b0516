package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TornBot_Go/internal/attacks"
	"github.com/osse101/TornBot_Go/internal/database/generated"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
)

// LeaderboardRepository implements the attack store for PostgreSQL
type LeaderboardRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(pool *pgxpool.Pool) attacks.Repository {
	return &LeaderboardRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// ApplyAttack inserts a new attack and bumps totals, or merges a known one.
// Two appliers racing on the same id serialize on the primary key, so only one sees the insert.
func (r *LeaderboardRepository) ApplyAttack(ctx context.Context, a domain.Attack) (bool, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return false, domain.NewStoreError(opBeginTx, err)
	}
	defer SafeRollback(ctx, h.Tx())
	q := h.Queries()

	n, err := q.InsertAttack(ctx, generated.InsertAttackParams{
		AttackID:     a.ID,
		Started:      a.Started,
		Ended:        ptrToInt8(a.Ended),
		AttackerID:   a.AttackerID,
		AttackerName: ptrToText(a.AttackerName),
		DefenderID:   ptrToInt8(a.DefenderID),
		DefenderName: ptrToText(a.DefenderName),
		Result:       ptrToText(a.Result),
		RespectGain:  a.RespectGain,
		RespectLoss:  a.RespectLoss,
		Mugged:       a.Mugged,
		Tags:         a.Tags.String(),
		Raw:          a.Raw,
	})
	if err != nil {
		return false, domain.NewStoreError(opApplyAttack, err)
	}

	inserted := n > 0
	if inserted {
		err = q.BumpActorTotals(ctx, generated.BumpActorTotalsParams{
			AttackerID:  a.AttackerID,
			Mugs:        boolToInt(a.Tags.Has(domain.TagMug)),
			Hosps:       boolToInt(a.Tags.Has(domain.TagHospitalize)),
			RespectGain: a.RespectGain,
			RespectLoss: a.RespectLoss,
			Mugged:      a.Mugged,
		})
	} else {
		err = q.MergeAttack(ctx, generated.MergeAttackParams{
			Ended:        ptrToInt8(a.Ended),
			AttackerName: ptrToText(a.AttackerName),
			DefenderID:   ptrToInt8(a.DefenderID),
			DefenderName: ptrToText(a.DefenderName),
			Result:       ptrToText(a.Result),
			Raw:          a.Raw,
			AttackID:     a.ID,
		})
		logger.FromContext(ctx).Debug(LogMsgAttackMerged, "attack_id", a.ID)
	}
	if err != nil {
		return false, domain.NewStoreError(opApplyAttack, err)
	}

	if err := h.Commit(ctx); err != nil {
		return false, domain.NewStoreError(opCommitTx, err)
	}
	return inserted, nil
}

// GetAttack returns a stored attack, or nil if it was never seen
func (r *LeaderboardRepository) GetAttack(ctx context.Context, id int64) (*domain.Attack, error) {
	row, err := r.q.GetAttack(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opGetAttack, err)
	}
	return &domain.Attack{
		ID:           row.AttackID,
		AttackerID:   row.AttackerID,
		AttackerName: textToPtr(row.AttackerName),
		DefenderID:   int8ToPtr(row.DefenderID),
		DefenderName: textToPtr(row.DefenderName),
		Started:      row.Started,
		Ended:        int8ToPtr(row.Ended),
		Result:       textToPtr(row.Result),
		RespectGain:  row.RespectGain,
		RespectLoss:  row.RespectLoss,
		Mugged:       row.Mugged,
		Tags:         domain.ParseTagSet(row.Tags),
		Raw:          row.Raw,
	}, nil
}

func (r *LeaderboardRepository) GetMeta(ctx context.Context, key string) (string, bool, error) {
	v, err := r.q.GetMeta(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.NewStoreError(opGetMeta, err)
	}
	return v, true, nil
}

func (r *LeaderboardRepository) SetMeta(ctx context.Context, key, value string) error {
	err := r.q.SetMeta(ctx, generated.SetMetaParams{Key: key, Value: value})
	return domain.NewStoreError(opSetMeta, err)
}

func (r *LeaderboardRepository) AdvanceMetaIfGreater(ctx context.Context, key string, value int64) (bool, error) {
	n, err := r.q.AdvanceMetaIfGreater(ctx, generated.AdvanceMetaIfGreaterParams{
		Key:   key,
		Value: strconv.FormatInt(value, 10),
	})
	if err != nil {
		return false, domain.NewStoreError(opAdvanceMeta, err)
	}
	return n > 0, nil
}

func (r *LeaderboardRepository) LowerMetaIfLess(ctx context.Context, key string, value int64) (bool, error) {
	n, err := r.q.LowerMetaIfLess(ctx, generated.LowerMetaIfLessParams{
		Key:   key,
		Value: strconv.FormatInt(value, 10),
	})
	if err != nil {
		return false, domain.NewStoreError(opLowerMeta, err)
	}
	return n > 0, nil
}

// GetActorTotals returns nil when the attacker has no stored attacks
func (r *LeaderboardRepository) GetActorTotals(ctx context.Context, attackerID int64) (*domain.ActorTotals, error) {
	row, err := r.q.GetActorTotals(ctx, attackerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opGetTotals, err)
	}
	return &domain.ActorTotals{
		AttackerID:       row.AttackerID,
		Attacks:          row.Attacks,
		Mugs:             row.Mugs,
		Hospitalizations: row.Hosps,
		RespectGain:      row.RespectGain,
		RespectLoss:      row.RespectLoss,
		Mugged:           row.Mugged,
		BestMug:          row.BestMug,
	}, nil
}

// TopBy returns the leading attacker for column, ties broken by lowest id. Nil when empty.
func (r *LeaderboardRepository) TopBy(ctx context.Context, column domain.LeaderboardColumn) (*domain.LeaderRow, error) {
	var (
		id    int64
		value float64
		err   error
	)
	switch column {
	case domain.ColumnAttacks:
		var row generated.TopByAttacksRow
		row, err = r.q.TopByAttacks(ctx)
		id, value = row.AttackerID, row.Value
	case domain.ColumnMugs:
		var row generated.TopByMugsRow
		row, err = r.q.TopByMugs(ctx)
		id, value = row.AttackerID, row.Value
	case domain.ColumnHospitalizations:
		var row generated.TopByHospsRow
		row, err = r.q.TopByHosps(ctx)
		id, value = row.AttackerID, row.Value
	case domain.ColumnRespectGain:
		var row generated.TopByRespectGainRow
		row, err = r.q.TopByRespectGain(ctx)
		id, value = row.AttackerID, row.Value
	case domain.ColumnBestMug:
		var row generated.TopByBestMugRow
		row, err = r.q.TopByBestMug(ctx)
		id, value = row.AttackerID, row.Value
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownColumn, column)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(opTopBy, err)
	}
	return &domain.LeaderRow{AttackerID: id, Value: value}, nil
}

func (r *LeaderboardRepository) TotalMugged(ctx context.Context) (float64, error) {
	total, err := r.q.SumMugged(ctx)
	if err != nil {
		return 0, domain.NewStoreError(opTotalMugged, err)
	}
	return total, nil
}

func (r *LeaderboardRepository) Ping(ctx context.Context) error {
	return domain.NewStoreError(opPing, r.pool.Ping(ctx))
}
