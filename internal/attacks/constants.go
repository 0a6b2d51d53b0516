package attacks

import "time"

// Sync tuning
const (
	RecentLookback    = time.Hour
	RecentPageLimit   = 3
	BackfillPageLimit = 3
	DailyPageLimit    = 4
	PageSize          = 100
	SampleLimit       = 5
	// RunTimeout bounds one shared sync run, independent of who is waiting on it
	RunTimeout = 2 * time.Minute
)

// Error messages
const (
	ErrMsgRecentPassFailed   = "recent sync pass failed"
	ErrMsgBackfillPassFailed = "backfill sync pass failed"
	ErrMsgPersistFailed      = "failed to persist sync metadata"
	ErrMsgLeaderboardFailed  = "failed to build leaderboard"
	ErrMsgDailyFetchFailed   = "failed to fetch today's attacks"
)

// Log messages
const (
	LogMsgSkippingMalformed = "Skipping malformed attack"
	LogMsgRecentPass        = "Recent sync pass complete"
	LogMsgBackfillPass      = "Backfill sync pass complete"
	LogMsgBackfillExhausted = "Backfill reached the end of the feed"
	LogMsgBackfillCursorEnd = "Backfill page had no usable cursor, treating feed as exhausted"
	LogMsgSyncFailed        = "Faction attack sync failed"
	LogMsgSyncComplete      = "Faction attack sync complete"
	LogMsgBadWatermark      = "Ignoring unparseable sync watermark"
)

// Display tags for attack lines
const (
	DisplayHosp   = "HOSP"
	DisplayMug    = "MUG"
	DisplayAssist = "ASST"
	DisplayLost   = "LOST"
	DisplayAttack = "ATK"
)
