// Package names resolves player ids to display names with layered caching.
package names

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
)

// Defaults
const (
	DefaultMemberTTL      = 10 * time.Minute
	DefaultMemberErrorTTL = time.Minute
	DefaultUserTTL        = 6 * time.Hour
	DefaultCacheSize      = 4096
	DefaultConcurrency    = 10
)

const (
	LogMsgMemberRefreshFailed = "Faction member refresh failed"
	LogMsgUserLookupFailed    = "User name lookup failed"
)

// Upstream is the part of the Torn client used for name lookups
type Upstream interface {
	FactionMembers(ctx context.Context, apiKey string) (map[int64]string, error)
	UserName(ctx context.Context, apiKey string, id int64) (string, error)
}

type cached struct {
	name    string
	expires time.Time
}

// Resolver maps ids to names: faction members first, then a per-user TTL cache,
// then bounded concurrent single-user lookups. Safe for concurrent use.
type Resolver struct {
	upstream Upstream
	clock    clock.Clock
	users    *lru.Cache[int64, cached]
	group    singleflight.Group

	mu            sync.RWMutex
	members       map[int64]string
	membersExpiry time.Time

	memberTTL      time.Duration
	memberErrorTTL time.Duration
	userTTL        time.Duration
	concurrency    int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithTTLs overrides the member, member-error and user cache lifetimes
func WithTTLs(member, memberError, user time.Duration) Option {
	return func(r *Resolver) {
		r.memberTTL, r.memberErrorTTL, r.userTTL = member, memberError, user
	}
}

// WithConcurrency bounds concurrent single-user lookups
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewResolver creates a Resolver with an LRU of size entries
func NewResolver(upstream Upstream, clk clock.Clock, size int, opts ...Option) (*Resolver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	users, err := lru.New[int64, cached](size)
	if err != nil {
		return nil, err
	}
	r := &Resolver{
		upstream:       upstream,
		clock:          clk,
		users:          users,
		memberTTL:      DefaultMemberTTL,
		memberErrorTTL: DefaultMemberErrorTTL,
		userTTL:        DefaultUserTTL,
		concurrency:    DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the names it could find. Ids that fail to resolve are left out.
func (r *Resolver) Resolve(ctx context.Context, apiKey string, ids []int64) map[int64]string {
	out := make(map[int64]string, len(ids))
	members := r.memberMap(ctx, apiKey)

	var pending []int64
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if name, ok := members[id]; ok {
			out[id] = name
			continue
		}
		if name, ok := r.cachedUser(id); ok {
			metrics.NameCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			out[id] = name
			continue
		}
		metrics.NameCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		pending = append(pending, id)
	}
	if len(pending) == 0 {
		return out
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, id := range pending {
		g.Go(func() error {
			name, err := r.upstream.UserName(gctx, apiKey, id)
			if err != nil || name == "" {
				logger.FromContext(ctx).Debug(LogMsgUserLookupFailed, "id", id, "error", err)
				return nil
			}
			r.Remember(id, name)
			mu.Lock()
			out[id] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Remember stores a known name, for example one seen in the attack feed
func (r *Resolver) Remember(id int64, name string) {
	if id <= 0 || name == "" {
		return
	}
	r.users.Add(id, cached{name: name, expires: r.clock.Now().Add(r.userTTL)})
}

// Invalidate drops one cached user name
func (r *Resolver) Invalidate(id int64) {
	r.users.Remove(id)
}

// Purge drops every cached name and forces a member refresh
func (r *Resolver) Purge() {
	r.users.Purge()
	r.mu.Lock()
	r.members = nil
	r.membersExpiry = time.Time{}
	r.mu.Unlock()
}

func (r *Resolver) cachedUser(id int64) (string, bool) {
	c, ok := r.users.Get(id)
	if !ok {
		return "", false
	}
	if !r.clock.Now().Before(c.expires) {
		r.users.Remove(id)
		return "", false
	}
	return c.name, true
}

// memberMap returns the cached faction member map, refreshing it once per expiry
func (r *Resolver) memberMap(ctx context.Context, apiKey string) map[int64]string {
	r.mu.RLock()
	members, expiry := r.members, r.membersExpiry
	r.mu.RUnlock()
	if r.clock.Now().Before(expiry) {
		return members
	}

	v, _, _ := r.group.Do("members", func() (any, error) {
		fresh, err := r.upstream.FactionMembers(ctx, apiKey)
		ttl := r.memberTTL
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgMemberRefreshFailed, "error", err)
			fresh, ttl = map[int64]string{}, r.memberErrorTTL
		}
		r.mu.Lock()
		r.members = fresh
		r.membersExpiry = r.clock.Now().Add(ttl)
		r.mu.Unlock()
		return fresh, nil
	})
	return v.(map[int64]string)
}
