package attacks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/TornBot_Go/internal/domain"
)

func (s *service) OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	lb := &domain.Leaderboard{}

	columns := []struct {
		column domain.LeaderboardColumn
		dst    **domain.LeaderRow
	}{
		{domain.ColumnAttacks, &lb.MostAttacks},
		{domain.ColumnMugs, &lb.MostMugs},
		{domain.ColumnHospitalizations, &lb.MostHospitalizations},
		{domain.ColumnRespectGain, &lb.MostRespectGained},
		{domain.ColumnBestMug, &lb.BestMug},
	}
	for _, c := range columns {
		row, err := s.repo.TopBy(ctx, c.column)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgLeaderboardFailed, err)
		}
		*c.dst = row
	}

	total, err := s.repo.TotalMugged(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLeaderboardFailed, err)
	}
	lb.TotalMugged = total

	raw, ok, err := s.repo.GetMeta(ctx, domain.MetaTrackedSince)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLeaderboardFailed, err)
	}
	if ok {
		if v, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			lb.TrackedSince = &v
		}
	}

	flag, _, err := s.repo.GetMeta(ctx, domain.MetaBackfillDone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLeaderboardFailed, err)
	}
	lb.BackfillComplete = flag == domain.MetaTrue

	return lb, nil
}
