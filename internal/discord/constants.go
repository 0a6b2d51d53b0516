package discord

import "time"

// MaxMessageLen keeps replies under Discord's 2000 character limit with some headroom
const MaxMessageLen = 1900

// CommandTimeout bounds the work done for one interaction
const CommandTimeout = 2 * time.Minute

// ProfileURL links a Torn player id
const ProfileURL = "https://www.torn.com/profiles.php?XID=%d"

// APIKeyHelpURL is where players create keys
const APIKeyHelpURL = "https://www.torn.com/preferences.php#tab=api"

// Command names
const (
	CmdSetAPI             = "setapi"
	CmdDeleteAPI          = "deleteapi"
	CmdSetGlobalFaction   = "set_global_faction_api"
	CmdDelGlobalFaction   = "delete_global_faction_api"
	CmdFactionLeaderboard = "faction_leaderboard"
	CmdFactionSync        = "faction_sync"

	OptAPIKey = "api_key"
)

// Reply texts
const (
	MsgNotAllowed         = "not allowed."
	MsgKeySaved           = "saved, verified as %s [%d]"
	MsgKeyRejected        = "that key didn't work - %s\n\nget your api key from " + APIKeyHelpURL
	MsgKeyRemoved         = "done, api key removed"
	MsgNoKeySaved         = "you don't have an api key saved"
	MsgGlobalKeySaved     = "saved. global faction key updated (encrypted)."
	MsgGlobalKeyRejected  = "key rejected by Torn: %s"
	MsgGlobalKeyRemoved   = "deleted. global faction key removed."
	MsgNoGlobalKey        = "no global faction key was set."
	MsgNoCredential       = "no API key available. Owners must run /set_global_faction_api first"
	MsgMissingOption      = "missing required option: %s"
	MsgStoreError         = "storage error, please try again later"
	MsgUnexpectedError    = "unexpected error: %s"
	MsgUpstreamError      = "Torn API error: %s"
	MsgUpstreamErrorCoded = "Torn API error %d: %s"
	MsgTimedOut           = "timed out talking to Torn, try again later"
	MsgNoAttacksToday     = "No attacks found."
	MsgUnknownPerson      = "`?`"
)

// Log messages
const (
	LogMsgBotReady           = "Discord bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgCommandsChecking   = "Checking Discord commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated    = "Commands updated"
	LogMsgCommandFailed      = "Command failed"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgEditFailed         = "Failed to edit interaction response"
	LogMsgFollowupFailed     = "Failed to send followup message"
	LogMsgUnknownCommand     = "Unknown command"
	LogMsgSyncDuringBoard    = "Sync before leaderboard failed"
	LogMsgDailyDuringBoard   = "Today's leaderboard unavailable"
	LogMsgLeaderboardBuilt   = "Leaderboard built"
	LogMsgManualSyncComplete = "Manual sync complete"
)
