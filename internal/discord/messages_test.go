package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5k"},
		{2_300_000, "2.3m"},
		{4_000_000_000, "4.0b"},
		{1_200_000_000_000, "1.2t"},
		{-2500, "-2.5k"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNum(tt.in), "FormatNum(%v)", tt.in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$1,234,567", FormatMoney(1234567))
}

func TestBuildLeaderboardMessage_EmptyStore(t *testing.T) {
	msg := BuildLeaderboardMessage(LeaderboardView{
		Overall: &domain.Leaderboard{},
		Now:     time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "Most attacks: `?`")
	assert.Contains(t, msg, "Backfill status (in progress)")
	assert.Contains(t, msg, "**Faction Leaderboard Today (02/01/24)**")
	assert.Contains(t, msg, MsgNoAttacksToday)
	assert.NotContains(t, msg, "Tracked since")
}

func TestBuildLeaderboardMessage_TrackedSinceInLocation(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	since := time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC).Unix()

	msg := BuildLeaderboardMessage(LeaderboardView{
		Overall:  &domain.Leaderboard{TrackedSince: &since},
		Now:      time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Location: london,
	})

	assert.Contains(t, msg, "Tracked since: 01/07/24 09:30")
}

func TestBuildLeaderboardMessage_Truncates(t *testing.T) {
	names := map[int64]string{1: strings.Repeat("x", 3000)}
	msg := BuildLeaderboardMessage(LeaderboardView{
		Overall: &domain.Leaderboard{MostAttacks: &domain.LeaderRow{AttackerID: 1, Value: 1}},
		Names:   names,
	})
	assert.LessOrEqual(t, len(msg), MaxMessageLen)
}

func TestBuildSyncMessage_ErrorWithoutResult(t *testing.T) {
	msg := BuildSyncMessage(nil, domain.ErrNoCredential, nil, nil)
	assert.Equal(t, "Sync failed: "+MsgNoCredential, msg)
}

func TestBuildSyncMessage_StatusLines(t *testing.T) {
	msg := BuildSyncMessage(&domain.SyncResult{
		Added:            0,
		BackfillComplete: true,
		TrackedSince:     time.Date(2023, 5, 6, 7, 8, 0, 0, time.UTC).Unix(),
	}, nil, nil, time.UTC)

	assert.Contains(t, msg, "Added: 0")
	assert.Contains(t, msg, "Backfill: complete")
	assert.Contains(t, msg, "Tracked since: 06/05/23 07:08")
	assert.NotContains(t, msg, "Last")
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	s := "ab€"
	assert.Equal(t, "ab", truncate(s, 3))
	assert.Equal(t, s, truncate(s, 5))
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"upstream with code", &torn.UpstreamError{Code: 2, Message: "Incorrect key"}, "Torn API error 2: Incorrect key"},
		{"wrapped upstream transport", fmt.Errorf("recent: %w", &torn.UpstreamError{Message: "HTTP 500"}), "Torn API error: HTTP 500"},
		{"no credential", domain.ErrNoCredential, MsgNoCredential},
		{"store", domain.NewStoreError("apply_attack", errors.New("locked")), MsgStoreError},
		{"timeout", context.DeadlineExceeded, MsgTimedOut},
		{"other", errors.New("weird"), "unexpected error: weird"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatError(tt.err))
		})
	}
}

func TestCommandsEqual(t *testing.T) {
	a, _ := SetAPICommand()
	b, _ := SetAPICommand()
	c, _ := DeleteAPICommand()

	assert.True(t, commandsEqual([]*discordgo.ApplicationCommand{a, c}, []*discordgo.ApplicationCommand{c, b}))
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{a}, []*discordgo.ApplicationCommand{a, c}))

	changed, _ := SetAPICommand()
	changed.Options[0].Required = false
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{a}, []*discordgo.ApplicationCommand{changed}))
}

func TestRegistry_RegistersAllCommands(t *testing.T) {
	bot, err := New(Config{Token: "t"}, &Deps{})
	assert.NoError(t, err)
	for _, name := range []string{CmdSetAPI, CmdDeleteAPI, CmdSetGlobalFaction, CmdDelGlobalFaction, CmdFactionLeaderboard, CmdFactionSync} {
		assert.Contains(t, bot.Registry.Handlers, name)
	}
}
