package discord

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

type fakeAttacks struct {
	syncRes    *domain.SyncResult
	syncErr    error
	overall    *domain.Leaderboard
	overallErr error
	daily      *domain.DailyLeaderboard
	dailyErr   error
	syncCalls  int
	lastKey    string
}

func (f *fakeAttacks) Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error) {
	f.syncCalls++
	f.lastKey = apiKey
	return f.syncRes, f.syncErr
}

func (f *fakeAttacks) OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	return f.overall, f.overallErr
}

func (f *fakeAttacks) DailyLeaderboard(ctx context.Context, apiKey string) (*domain.DailyLeaderboard, error) {
	return f.daily, f.dailyErr
}

type fakeKeys struct {
	user   map[string]string
	global map[string]string
	err    error
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{user: map[string]string{}, global: map[string]string{}}
}

func (f *fakeKeys) SetUserKey(ctx context.Context, userID, apiKey string) error {
	if f.err != nil {
		return f.err
	}
	f.user[userID] = apiKey
	return nil
}

func (f *fakeKeys) DeleteUserKey(ctx context.Context, userID string) (bool, error) {
	_, ok := f.user[userID]
	delete(f.user, userID)
	return ok, f.err
}

func (f *fakeKeys) SetGlobalKey(ctx context.Context, slot, apiKey string) error {
	if f.err != nil {
		return f.err
	}
	f.global[slot] = apiKey
	return nil
}

func (f *fakeKeys) DeleteGlobalKey(ctx context.Context, slot string) (bool, error) {
	_, ok := f.global[slot]
	delete(f.global, slot)
	return ok, f.err
}

func (f *fakeKeys) ResolveFactionKey(ctx context.Context, userID string) (string, error) {
	if k, ok := f.global["faction"]; ok {
		return k, nil
	}
	if k, ok := f.user[userID]; ok {
		return k, nil
	}
	return "", domain.ErrNoCredential
}

type fakeNames struct {
	known      map[int64]string
	remembered map[int64]string
}

func newFakeNames(known map[int64]string) *fakeNames {
	return &fakeNames{known: known, remembered: map[int64]string{}}
}

func (f *fakeNames) Resolve(ctx context.Context, apiKey string, ids []int64) map[int64]string {
	out := map[int64]string{}
	for _, id := range ids {
		if n, ok := f.remembered[id]; ok {
			out[id] = n
		} else if n, ok := f.known[id]; ok {
			out[id] = n
		}
	}
	return out
}

func (f *fakeNames) Remember(id int64, name string) {
	f.remembered[id] = name
}

type fakeVerifier struct {
	owner *torn.UserBasic
	err   error
}

func (f *fakeVerifier) KeyOwner(ctx context.Context, apiKey string) (*torn.UserBasic, error) {
	return f.owner, f.err
}

func (f *fakeVerifier) FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]torn.Attack, error) {
	return nil, f.err
}

var errBoom = errors.New("boom")

func testDeps() (*Deps, *fakeAttacks, *fakeKeys, *fakeNames, *fakeVerifier) {
	att := &fakeAttacks{overall: &domain.Leaderboard{}}
	keys := newFakeKeys()
	names := newFakeNames(map[int64]string{})
	ver := &fakeVerifier{owner: &torn.UserBasic{PlayerID: torn.Int64{Value: 42, Valid: true}, Name: "Alice"}}
	deps := &Deps{
		Attacks:  att,
		Keys:     keys,
		Names:    names,
		Verifier: ver,
		IsOwner:  func(id string) bool { return id == "owner" },
		Clock:    clock.NewSimulatedClock(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)),
		Location: time.UTC,
	}
	return deps, att, keys, names, ver
}
