package attacks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// memRepo is an in-memory Repository with the same merge and ranking rules as the SQL stores
type memRepo struct {
	mu      sync.Mutex
	attacks map[int64]domain.Attack
	totals  map[int64]*domain.ActorTotals
	meta    map[string]string
	failOn  int // fail the nth ApplyAttack call, 1-based
	applies int
}

func newMemRepo() *memRepo {
	return &memRepo{
		attacks: map[int64]domain.Attack{},
		totals:  map[int64]*domain.ActorTotals{},
		meta:    map[string]string{},
	}
}

var errStoreDown = fmt.Errorf("store down")

func (r *memRepo) ApplyAttack(ctx context.Context, a domain.Attack) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applies++
	if r.failOn > 0 && r.applies >= r.failOn {
		return false, domain.NewStoreError("apply attack", errStoreDown)
	}

	if old, ok := r.attacks[a.ID]; ok {
		if a.AttackerName != nil {
			old.AttackerName = a.AttackerName
		}
		if a.DefenderName != nil {
			old.DefenderName = a.DefenderName
		}
		if a.Result != nil {
			old.Result = a.Result
		}
		r.attacks[a.ID] = old
		return false, nil
	}

	r.attacks[a.ID] = a
	t := r.totals[a.AttackerID]
	if t == nil {
		t = &domain.ActorTotals{AttackerID: a.AttackerID}
		r.totals[a.AttackerID] = t
	}
	Accumulate(t, a)
	return true, nil
}

func (r *memRepo) GetAttack(ctx context.Context, id int64) (*domain.Attack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attacks[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memRepo) GetMeta(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.meta[key]
	return v, ok, nil
}

func (r *memRepo) SetMeta(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta[key] = value
	return nil
}

func (r *memRepo) AdvanceMetaIfGreater(ctx context.Context, key string, value int64) (bool, error) {
	return r.cas(key, value, func(cur int64) bool { return value > cur }), nil
}

func (r *memRepo) LowerMetaIfLess(ctx context.Context, key string, value int64) (bool, error) {
	return r.cas(key, value, func(cur int64) bool { return value < cur }), nil
}

func (r *memRepo) cas(key string, value int64, better func(int64) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if raw, ok := r.meta[key]; ok {
		if cur, err := strconv.ParseInt(raw, 10, 64); err == nil && !better(cur) {
			return false
		}
	}
	r.meta[key] = strconv.FormatInt(value, 10)
	return true
}

func (r *memRepo) GetActorTotals(ctx context.Context, attackerID int64) (*domain.ActorTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.totals[attackerID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memRepo) TopBy(ctx context.Context, column domain.LeaderboardColumn) (*domain.LeaderRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]domain.LeaderRow, 0, len(r.totals))
	for id, t := range r.totals {
		var v float64
		switch column {
		case domain.ColumnAttacks:
			v = float64(t.Attacks)
		case domain.ColumnMugs:
			v = float64(t.Mugs)
		case domain.ColumnHospitalizations:
			v = float64(t.Hospitalizations)
		case domain.ColumnRespectGain:
			v = t.RespectGain
		case domain.ColumnBestMug:
			v = t.BestMug
		}
		rows = append(rows, domain.LeaderRow{AttackerID: id, Value: v})
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].AttackerID < rows[j].AttackerID
	})
	return &rows[0], nil
}

func (r *memRepo) TotalMugged(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	for _, t := range r.totals {
		sum += t.Mugged
	}
	return sum, nil
}

func (r *memRepo) Ping(ctx context.Context) error { return nil }

// feed simulates the upstream attacks feed: newest first, to is an inclusive upper bound on ended
type feed struct {
	mu         sync.Mutex
	items      []torn.Attack
	pageCalls  int
	failAfter  int // with err set, page calls after the first failAfter return err
	err        error
	sinceCalls int
}

func (f *feed) FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]torn.Attack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil && f.pageCalls >= f.failAfter {
		f.pageCalls++
		return nil, f.err
	}
	f.pageCalls++

	var out []torn.Attack
	for _, a := range f.items {
		if to > 0 && a.Ended.Value > to {
			continue
		}
		out = append(out, a)
		if len(out) == pageSize {
			break
		}
	}
	return out, nil
}

func (f *feed) FetchAttacksSince(ctx context.Context, apiKey string, since int64, maxPages, pageSize int) ([]torn.Attack, error) {
	f.mu.Lock()
	f.sinceCalls++
	f.mu.Unlock()
	return torn.FetchSince(ctx, f, apiKey, since, maxPages, pageSize)
}

// item builds a feed entry; ended is started+1
func item(id, attacker, started int64, result string, respect float64, extra map[string]any) torn.Attack {
	doc := map[string]any{
		"id":           id,
		"started":      started,
		"ended":        started + 1,
		"result":       result,
		"respect_gain": respect,
		"attacker":     map[string]any{"id": attacker, "name": fmt.Sprintf("player%d", attacker)},
		"defender":     map[string]any{"id": 9000 + id, "name": "target"},
	}
	for k, v := range extra {
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var a torn.Attack
	if err := json.Unmarshal(raw, &a); err != nil {
		panic(err)
	}
	return a
}

// newestFirst builds n attacks by attacker 1, started base+10*i, returned newest first
func newestFirst(n int, base int64) []torn.Attack {
	out := make([]torn.Attack, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, item(int64(i+1), 1, base+int64(i)*10, "Attacked", 1, nil))
	}
	return out
}

// gatedFeed holds the recent pass until release is closed or the run's ctx ends
type gatedFeed struct {
	*feed
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedFeed(items []torn.Attack) *gatedFeed {
	return &gatedFeed{
		feed:    &feed{items: items},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gatedFeed) FetchAttacksSince(ctx context.Context, apiKey string, since int64, maxPages, pageSize int) ([]torn.Attack, error) {
	g.once.Do(func() { close(g.started) })
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.feed.FetchAttacksSince(ctx, apiKey, since, maxPages, pageSize)
}
