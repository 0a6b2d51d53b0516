package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/TornBot_Go/internal/attacks"
	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/names"
	"github.com/osse101/TornBot_Go/internal/secrets"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// Services is the engine every entry point shares: storage, credentials,
// the Torn client and the attack sync/leaderboard service.
type Services struct {
	Stores  *Stores
	Keys    secrets.Service
	Torn    *torn.Client
	Attacks attacks.Service
	Names   *names.Resolver
	Clock   clock.Clock
}

// InitializeServices opens storage and builds the services on top of it.
// The caller owns Stores and must Close it.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	key, err := secrets.LoadOrCreateKey(cfg.EncryptionKey, cfg.EncryptionKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadKey, err)
	}
	cipher, err := secrets.NewBoxCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateCipher, err)
	}

	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	clk := clock.NewRealClock()
	client := torn.NewClient(cfg.TornAPIBase, cfg.TornV2Base, torn.WithRateLimit(cfg.TornRequestsPerMinute))

	resolver, err := names.NewResolver(client, clk, names.DefaultCacheSize)
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedNameCache, err)
	}

	attackCfg := attacks.DefaultConfig()
	attackCfg.Location = cfg.Location()
	attackCfg.Clock = clk

	return &Services{
		Stores:  stores,
		Keys:    secrets.NewService(stores.Secrets, cipher),
		Torn:    client,
		Attacks: attacks.NewService(stores.Leaderboard, client, attackCfg),
		Names:   resolver,
		Clock:   clk,
	}, nil
}
