package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// CommandHandler handles a slash command
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle dispatches an interaction to its command handler
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn(LogMsgUnknownCommand, "command", name)
		return
	}
	metrics.CommandsTotal.WithLabelValues(name).Inc()

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()
	h(ctx, s, i, deps)
}

// RegisterCommands overwrites the application commands when they differ from the registry.
// forceUpdate skips the comparison.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info(LogMsgCommandsChecking)

	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existing, desired) {
			slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
			return nil
		}
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desired))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := byName[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		o, p := a.Options[i], b.Options[i]
		if o.Type != p.Type || o.Name != p.Name || o.Description != p.Description || o.Required != p.Required {
			return false
		}
	}
	return true
}

// deferResponse acknowledges an interaction before slow work.
// Returns false if the deferral failed and the handler should give up.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respond replaces the deferred placeholder with content
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	content = truncate(content, MaxMessageLen)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// followup posts an additional message after the first reply
func followup(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: truncate(content, MaxMessageLen),
	}); err != nil {
		slog.Error(LogMsgFollowupFailed, "error", err)
	}
}

// getInteractionUser handles both guild (i.Member.User) and DM (i.User) contexts
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// stringOption returns the named string option, trimmed
func stringOption(i *discordgo.InteractionCreate, name string) string {
	for _, o := range i.ApplicationCommandData().Options {
		if o.Name == name {
			return strings.TrimSpace(o.StringValue())
		}
	}
	return ""
}

// formatError renders an error as plain text for users.
// Only the upstream Torn error code is surfaced; store details stay in the logs.
func formatError(err error) string {
	if upErr, ok := torn.IsUpstreamError(err); ok {
		if upErr.Code != 0 {
			return fmt.Sprintf(MsgUpstreamErrorCoded, upErr.Code, upErr.Message)
		}
		return fmt.Sprintf(MsgUpstreamError, upErr.Message)
	}

	var storeErr *domain.StoreError
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return MsgNoCredential
	case errors.As(err, &storeErr):
		return MsgStoreError
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimedOut
	default:
		return fmt.Sprintf(MsgUnexpectedError, err)
	}
}

// upstreamMessage is the bare Torn error text, used where the reply already says what failed
func upstreamMessage(err error) string {
	if upErr, ok := torn.IsUpstreamError(err); ok {
		return upErr.Message
	}
	return err.Error()
}
