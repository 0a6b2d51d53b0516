package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// AttackService is the attack sync and leaderboard engine
type AttackService interface {
	Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error)
	OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error)
	DailyLeaderboard(ctx context.Context, apiKey string) (*domain.DailyLeaderboard, error)
}

// KeyStore holds per-user and global API keys
type KeyStore interface {
	SetUserKey(ctx context.Context, userID, apiKey string) error
	DeleteUserKey(ctx context.Context, userID string) (bool, error)
	SetGlobalKey(ctx context.Context, slot, apiKey string) error
	DeleteGlobalKey(ctx context.Context, slot string) (bool, error)
	ResolveFactionKey(ctx context.Context, userID string) (string, error)
}

// NameResolver turns player ids into names
type NameResolver interface {
	Resolve(ctx context.Context, apiKey string, ids []int64) map[int64]string
	Remember(id int64, name string)
}

// KeyVerifier checks keys against the Torn API before they are stored
type KeyVerifier interface {
	KeyOwner(ctx context.Context, apiKey string) (*torn.UserBasic, error)
	FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]torn.Attack, error)
}

// Deps are the services commands run against
type Deps struct {
	Attacks  AttackService
	Keys     KeyStore
	Names    NameResolver
	Verifier KeyVerifier
	IsOwner  func(userID string) bool
	// Clock and Location drive dates shown in replies
	Clock    clock.Clock
	Location *time.Location
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Deps     *Deps
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// New creates a new Discord bot with every command registered
func New(cfg Config, deps *Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	registry := NewCommandRegistry()
	registry.Register(SetAPICommand())
	registry.Register(DeleteAPICommand())
	registry.Register(SetGlobalFactionCommand())
	registry.Register(DeleteGlobalFactionCommand())
	registry.Register(FactionLeaderboardCommand())
	registry.Register(FactionSyncCommand())

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		Registry: registry,
		Deps:     deps,
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.Registry.Handle(s, i, b.Deps)
}
