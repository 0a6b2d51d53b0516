package attacks

import (
	"context"
	"fmt"

	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

func (s *service) DailyLeaderboard(ctx context.Context, apiKey string) (*domain.DailyLeaderboard, error) {
	if apiKey == "" {
		return nil, domain.ErrNoCredential
	}

	since := clock.StartOfDay(s.cfg.Clock.Now(), s.cfg.Location).Unix()
	items, err := s.upstream.FetchAttacksSince(ctx, apiKey, since, s.cfg.DailyPageLimit, s.cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDailyFetchFailed, err)
	}
	return AggregateDaily(since, items), nil
}

// AggregateDaily builds a leaderboard from raw feed items started at or after since.
// Duplicate ids are counted once and malformed items are skipped.
// Ties go to the lowest attacker id.
func AggregateDaily(since int64, items []torn.Attack) *domain.DailyLeaderboard {
	lb := &domain.DailyLeaderboard{Since: since, Names: map[int64]string{}}
	totals := map[int64]*domain.ActorTotals{}
	seen := map[int64]struct{}{}

	for _, item := range items {
		a, err := Normalize(item)
		if err != nil || a.Started < since {
			continue
		}
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}

		t := totals[a.AttackerID]
		if t == nil {
			t = &domain.ActorTotals{AttackerID: a.AttackerID}
			totals[a.AttackerID] = t
		}
		Accumulate(t, a)
		if a.AttackerName != nil {
			lb.Names[a.AttackerID] = *a.AttackerName
		}
		lb.Attacks++
		lb.TotalMugged += a.Mugged
	}

	lb.MostAttacks = topBy(totals, func(t *domain.ActorTotals) float64 { return float64(t.Attacks) })
	lb.MostMugs = topBy(totals, func(t *domain.ActorTotals) float64 { return float64(t.Mugs) })
	lb.MostHospitalizations = topBy(totals, func(t *domain.ActorTotals) float64 { return float64(t.Hospitalizations) })
	lb.MostRespectGained = topBy(totals, func(t *domain.ActorTotals) float64 { return t.RespectGain })
	lb.BestMug = topBy(totals, func(t *domain.ActorTotals) float64 { return t.BestMug })
	if lb.BestMug != nil && lb.BestMug.Value == 0 {
		lb.BestMug = nil
	}
	return lb
}

// Accumulate adds one attack to an attacker's running totals.
// Mug and hospitalization tags count independently.
func Accumulate(t *domain.ActorTotals, a domain.Attack) {
	t.Attacks++
	if a.Tags.Has(domain.TagMug) {
		t.Mugs++
	}
	if a.Tags.Has(domain.TagHospitalize) {
		t.Hospitalizations++
	}
	t.RespectGain += a.RespectGain
	t.RespectLoss += a.RespectLoss
	t.Mugged += a.Mugged
	if a.Mugged > t.BestMug {
		t.BestMug = a.Mugged
	}
}

func topBy(totals map[int64]*domain.ActorTotals, value func(*domain.ActorTotals) float64) *domain.LeaderRow {
	var best *domain.LeaderRow
	for id, t := range totals {
		v := value(t)
		if best == nil || v > best.Value || (v == best.Value && id < best.AttackerID) {
			best = &domain.LeaderRow{AttackerID: id, Value: v}
		}
	}
	return best
}
