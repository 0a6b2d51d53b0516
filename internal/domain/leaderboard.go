package domain

// Sync metadata keys
const (
	MetaLastSyncStarted = "leaderboard_last_sync_started"
	MetaBackfillDone    = "leaderboard_backfill_done"
	MetaBackfillTo      = "leaderboard_backfill_to"
	MetaTrackedSince    = "leaderboard_tracked_since"
)

// MetaTrue is the stored value for boolean metadata flags
const MetaTrue = "1"

// LeaderboardColumn names an aggregate column that can be ranked.
type LeaderboardColumn string

const (
	ColumnAttacks          LeaderboardColumn = "attacks"
	ColumnMugs             LeaderboardColumn = "mugs"
	ColumnHospitalizations LeaderboardColumn = "hosps"
	ColumnRespectGain      LeaderboardColumn = "respect_gain"
	ColumnBestMug          LeaderboardColumn = "best_mug"
)

// Valid reports whether c is a known column
func (c LeaderboardColumn) Valid() bool {
	switch c {
	case ColumnAttacks, ColumnMugs, ColumnHospitalizations, ColumnRespectGain, ColumnBestMug:
		return true
	}
	return false
}

// LeaderRow is the top actor for one column.
type LeaderRow struct {
	AttackerID int64   `json:"attacker_id"`
	Name       string  `json:"name,omitempty"`
	Value      float64 `json:"value"`
}

// Leaderboard is the all-time leaderboard built from stored aggregates.
type Leaderboard struct {
	MostAttacks          *LeaderRow `json:"most_attacks"`
	MostMugs             *LeaderRow `json:"most_mugs"`
	MostHospitalizations *LeaderRow `json:"most_hospitalizations"`
	MostRespectGained    *LeaderRow `json:"most_respect_gained"`
	BestMug              *LeaderRow `json:"best_mug"`
	TotalMugged          float64    `json:"total_mugged"`
	TrackedSince         *int64     `json:"tracked_since,omitempty"`
	BackfillComplete     bool       `json:"backfill_complete"`
}

// Rows returns the non-nil rows, useful for name resolution
func (l *Leaderboard) Rows() []*LeaderRow {
	var rows []*LeaderRow
	for _, r := range []*LeaderRow{l.MostAttacks, l.MostMugs, l.MostHospitalizations, l.MostRespectGained, l.BestMug} {
		if r != nil {
			rows = append(rows, r)
		}
	}
	return rows
}

// DailyLeaderboard is the leaderboard for attacks started since local midnight.
type DailyLeaderboard struct {
	Since                int64      `json:"since"`
	Attacks              int        `json:"attacks"`
	MostAttacks          *LeaderRow `json:"most_attacks"`
	MostMugs             *LeaderRow `json:"most_mugs"`
	MostHospitalizations *LeaderRow `json:"most_hospitalizations"`
	MostRespectGained    *LeaderRow `json:"most_respect_gained"`
	BestMug              *LeaderRow `json:"best_mug"`
	TotalMugged          float64    `json:"total_mugged"`
	// Names seen in the upstream feed, keyed by attacker id.
	Names map[int64]string `json:"-"`
}

// Rows returns the non-nil rows
func (l *DailyLeaderboard) Rows() []*LeaderRow {
	var rows []*LeaderRow
	for _, r := range []*LeaderRow{l.MostAttacks, l.MostMugs, l.MostHospitalizations, l.MostRespectGained, l.BestMug} {
		if r != nil {
			rows = append(rows, r)
		}
	}
	return rows
}

// SyncResult is the outcome of one sync invocation.
type SyncResult struct {
	Added            int            `json:"added"`
	BackfillComplete bool           `json:"backfill_complete"`
	NewestObserved   int64          `json:"newest_observed,omitempty"`
	OldestObserved   int64          `json:"oldest_observed,omitempty"`
	BackfillCursor   int64          `json:"backfill_cursor,omitempty"`
	TrackedSince     int64          `json:"tracked_since,omitempty"`
	Samples          []AttackSample `json:"samples,omitempty"`
}
