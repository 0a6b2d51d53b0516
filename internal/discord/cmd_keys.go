package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/secrets"
)

// SetAPICommand saves the caller's own key after checking who owns it
func SetAPICommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSetAPI,
		Description: "save your torn api key",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptAPIKey,
			Description: "your torn api key",
			Required:    true,
		}},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, true) {
			return
		}
		respond(s, i, setUserKey(ctx, deps, getInteractionUser(i).ID, stringOption(i, OptAPIKey)))
	}
	return cmd, handler
}

// DeleteAPICommand removes the caller's own key
func DeleteAPICommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDeleteAPI,
		Description: "delete your api key",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, true) {
			return
		}
		respond(s, i, deleteUserKey(ctx, deps, getInteractionUser(i).ID))
	}
	return cmd, handler
}

// SetGlobalFactionCommand lets an owner set the shared faction key
func SetGlobalFactionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSetGlobalFaction,
		Description: "Owner only: set the shared faction API key.",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptAPIKey,
			Description: "Faction-capable Torn API key",
			Required:    true,
		}},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, true) {
			return
		}
		respond(s, i, setGlobalFactionKey(ctx, deps, getInteractionUser(i).ID, stringOption(i, OptAPIKey)))
	}
	return cmd, handler
}

// DeleteGlobalFactionCommand lets an owner remove the shared faction key
func DeleteGlobalFactionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDelGlobalFaction,
		Description: "Owner only: delete the shared faction API key.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i, true) {
			return
		}
		respond(s, i, deleteGlobalFactionKey(ctx, deps, getInteractionUser(i).ID))
	}
	return cmd, handler
}

func setUserKey(ctx context.Context, deps *Deps, userID, apiKey string) string {
	if apiKey == "" {
		return fmt.Sprintf(MsgMissingOption, OptAPIKey)
	}

	owner, err := deps.Verifier.KeyOwner(ctx, apiKey)
	if err != nil {
		return fmt.Sprintf(MsgKeyRejected, upstreamMessage(err))
	}
	if err := deps.Keys.SetUserKey(ctx, userID, apiKey); err != nil {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", CmdSetAPI, "error", err)
		return formatError(err)
	}
	deps.Names.Remember(owner.PlayerID.Value, owner.Name)
	return fmt.Sprintf(MsgKeySaved, owner.Name, owner.PlayerID.Value)
}

func deleteUserKey(ctx context.Context, deps *Deps, userID string) string {
	removed, err := deps.Keys.DeleteUserKey(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", CmdDeleteAPI, "error", err)
		return formatError(err)
	}
	if !removed {
		return MsgNoKeySaved
	}
	return MsgKeyRemoved
}

func setGlobalFactionKey(ctx context.Context, deps *Deps, userID, apiKey string) string {
	if !deps.IsOwner(userID) {
		return MsgNotAllowed
	}
	if apiKey == "" {
		return fmt.Sprintf(MsgMissingOption, OptAPIKey)
	}

	// A one item attacks page proves the key has faction access
	if _, err := deps.Verifier.FetchAttacksPage(ctx, apiKey, 0, 1); err != nil {
		return fmt.Sprintf(MsgGlobalKeyRejected, upstreamMessage(err))
	}
	if err := deps.Keys.SetGlobalKey(ctx, secrets.SlotFaction, apiKey); err != nil {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", CmdSetGlobalFaction, "error", err)
		return formatError(err)
	}
	return MsgGlobalKeySaved
}

func deleteGlobalFactionKey(ctx context.Context, deps *Deps, userID string) string {
	if !deps.IsOwner(userID) {
		return MsgNotAllowed
	}
	removed, err := deps.Keys.DeleteGlobalKey(ctx, secrets.SlotFaction)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", CmdDelGlobalFaction, "error", err)
		return formatError(err)
	}
	if !removed {
		return MsgNoGlobalKey
	}
	return MsgGlobalKeyRemoved
}
