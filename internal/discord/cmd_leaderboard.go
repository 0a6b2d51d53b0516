package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/TornBot_Go/internal/logger"
)

// FactionLeaderboardCommand syncs, then shows the overall and today's leaderboards
func FactionLeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdFactionLeaderboard,
		Description: "Faction leaderboard: all time and today.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, false) {
			return
		}
		respond(s, i, buildLeaderboard(ctx, deps, getInteractionUser(i).ID))
	}
	return cmd, handler
}

// FactionSyncCommand lets an owner run a sync and see what it did
func FactionSyncCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdFactionSync,
		Description: "Owner only: sync faction attacks now and show the result.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, true) {
			return
		}
		respond(s, i, runSync(ctx, deps, getInteractionUser(i).ID))
	}
	return cmd, handler
}

// buildLeaderboard never fails as a whole: sync and today's data degrade to notes
func buildLeaderboard(ctx context.Context, deps *Deps, userID string) string {
	log := logger.FromContext(ctx)

	apiKey, err := deps.Keys.ResolveFactionKey(ctx, userID)
	if err != nil {
		return formatError(err)
	}

	view := LeaderboardView{
		Now:      deps.now(),
		Location: deps.Location,
	}

	if _, err := deps.Attacks.Sync(ctx, apiKey); err != nil {
		log.Warn(LogMsgSyncDuringBoard, "error", err)
		view.SyncErr = err
	}

	view.Overall, err = deps.Attacks.OverallLeaderboard(ctx)
	if err != nil {
		log.Error(LogMsgCommandFailed, "command", CmdFactionLeaderboard, "error", err)
		return formatError(err)
	}

	view.Daily, view.DailyErr = deps.Attacks.DailyLeaderboard(ctx, apiKey)
	if view.DailyErr != nil {
		log.Warn(LogMsgDailyDuringBoard, "error", view.DailyErr)
		view.Daily = nil
	}

	var ids []int64
	for _, row := range view.Overall.Rows() {
		ids = append(ids, row.AttackerID)
	}
	if view.Daily != nil {
		for id, name := range view.Daily.Names {
			deps.Names.Remember(id, name)
		}
		for _, row := range view.Daily.Rows() {
			ids = append(ids, row.AttackerID)
		}
	}
	view.Names = deps.Names.Resolve(ctx, apiKey, ids)

	log.Debug(LogMsgLeaderboardBuilt, "resolved", len(view.Names))
	return BuildLeaderboardMessage(view)
}

func runSync(ctx context.Context, deps *Deps, userID string) string {
	if !deps.IsOwner(userID) {
		return MsgNotAllowed
	}

	apiKey, err := deps.Keys.ResolveFactionKey(ctx, userID)
	if err != nil {
		return formatError(err)
	}

	res, syncErr := deps.Attacks.Sync(ctx, apiKey)
	if syncErr != nil {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", CmdFactionSync, "error", syncErr)
	}

	var names map[int64]string
	if res != nil {
		logger.FromContext(ctx).Info(LogMsgManualSyncComplete, "added", res.Added)
		var ids []int64
		for _, smp := range res.Samples {
			if smp.AttackerName == "" {
				ids = append(ids, smp.AttackerID)
			}
			if smp.DefenderName == "" && smp.DefenderID > 0 {
				ids = append(ids, smp.DefenderID)
			}
		}
		names = deps.Names.Resolve(ctx, apiKey, ids)
	}
	return BuildSyncMessage(res, syncErr, names, deps.Location)
}

func (d *Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock.Now()
}
