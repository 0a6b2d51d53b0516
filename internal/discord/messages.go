package discord

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/TornBot_Go/internal/attacks"
	"github.com/osse101/TornBot_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatNum abbreviates large numbers: 1500 -> 1.5k, 2300000 -> 2.3m
func FormatNum(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.1ft", n/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.1fb", n/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fm", n/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fk", n/1e3)
	}
	return fmt.Sprintf("%d", int64(n))
}

// FormatMoney renders a whole dollar amount with thousands separators
func FormatMoney(n float64) string {
	return printer.Sprintf("$%d", int64(math.Round(n)))
}

func formatDate(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("02/01/06")
}

func formatDateTime(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("02/01/06 15:04")
}

// profileLink renders a player as a markdown link when the name is known
func profileLink(id int64, names map[int64]string) string {
	if id <= 0 {
		return MsgUnknownPerson
	}
	if name, ok := names[id]; ok && name != "" {
		return fmt.Sprintf("[%s [%d]]("+ProfileURL+")", name, id, id)
	}
	return fmt.Sprintf("`%d`", id)
}

func formatRow(row *domain.LeaderRow, names map[int64]string, value func(float64) string) string {
	if row == nil {
		return MsgUnknownPerson
	}
	return fmt.Sprintf("%s - `%s`", profileLink(row.AttackerID, names), value(row.Value))
}

func count(v float64) string  { return fmt.Sprintf("%d", int64(v)) }
func signed(v float64) string { return fmt.Sprintf("%+.2f", v) }

// LeaderboardView gathers everything the leaderboard reply shows.
// DailyErr and SyncErr are rendered as notes rather than failing the whole reply.
type LeaderboardView struct {
	Overall  *domain.Leaderboard
	Daily    *domain.DailyLeaderboard
	DailyErr error
	SyncErr  error
	Names    map[int64]string
	Now      time.Time
	Location *time.Location
}

// BuildLeaderboardMessage renders the overall and today's leaderboards
func BuildLeaderboardMessage(v LeaderboardView) string {
	loc := v.Location
	if loc == nil {
		loc = time.UTC
	}
	today := v.Now.In(loc).Format("02/01/06")
	lb := v.Overall

	lines := []string{
		"**Faction Leaderboard Overall**",
		"",
		"Most attacks: " + formatRow(lb.MostAttacks, v.Names, count),
		"Most mugs: " + formatRow(lb.MostMugs, v.Names, count),
		"Most hospitals: " + formatRow(lb.MostHospitalizations, v.Names, count),
		"Most respect gained: " + formatRow(lb.MostRespectGained, v.Names, signed),
		"Best mug: " + formatRow(lb.BestMug, v.Names, FormatMoney),
		"Total mugged: " + FormatMoney(lb.TotalMugged),
		"",
	}
	if lb.TrackedSince != nil {
		lines = append(lines, "Tracked since: "+formatDateTime(*lb.TrackedSince, loc))
	}
	if lb.BackfillComplete {
		lines = append(lines, "Backfill from faction data complete")
	} else {
		lines = append(lines, "Backfill status (in progress)")
	}
	if v.SyncErr != nil {
		lines = append(lines, "", "Sync note: "+formatError(v.SyncErr))
	}

	lines = append(lines, "", fmt.Sprintf("**Faction Leaderboard Today (%s)**", today), "")
	switch {
	case v.DailyErr != nil:
		lines = append(lines, "Today data unavailable: "+formatError(v.DailyErr))
	case v.Daily == nil || v.Daily.Attacks == 0:
		lines = append(lines, MsgNoAttacksToday)
	default:
		d := v.Daily
		lines = append(lines,
			"Most attacks: "+formatRow(d.MostAttacks, v.Names, count),
			"Most mugs: "+formatRow(d.MostMugs, v.Names, count),
			"Most hospitals: "+formatRow(d.MostHospitalizations, v.Names, count),
			"Most respect gained: "+formatRow(d.MostRespectGained, v.Names, signed),
		)
		if d.BestMug != nil {
			lines = append(lines, "Best mug: "+formatRow(d.BestMug, v.Names, FormatMoney))
		}
		lines = append(lines, "Total mugged: "+FormatMoney(d.TotalMugged))
	}

	return truncate(strings.Join(lines, "\n"), MaxMessageLen)
}

// BuildSyncMessage renders a sync result as operator status lines plus the sample of added attacks
func BuildSyncMessage(res *domain.SyncResult, syncErr error, names map[int64]string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	var lines []string
	if syncErr != nil {
		lines = append(lines, "Sync failed: "+formatError(syncErr))
		if res == nil {
			return strings.Join(lines, "\n")
		}
		lines = append(lines, "Partial progress kept:")
	}

	lines = append(lines, fmt.Sprintf("Added: %d", res.Added))
	if res.BackfillComplete {
		lines = append(lines, "Backfill: complete")
	} else {
		lines = append(lines, "Backfill: in progress")
	}
	if res.NewestObserved > 0 {
		lines = append(lines, "Newest added: "+formatDateTime(res.NewestObserved, loc))
	}
	if res.OldestObserved > 0 {
		lines = append(lines, "Oldest added: "+formatDateTime(res.OldestObserved, loc))
	}
	if res.BackfillCursor > 0 {
		lines = append(lines, "Backfill cursor: "+formatDateTime(res.BackfillCursor, loc))
	}
	if res.TrackedSince > 0 {
		lines = append(lines, "Tracked since: "+formatDateTime(res.TrackedSince, loc))
	}

	if len(res.Samples) > 0 {
		lines = append(lines, "", fmt.Sprintf("**Last %d added**", len(res.Samples)))
		for _, smp := range res.Samples {
			lines = append(lines, formatSample(smp, names, loc))
		}
	}
	return truncate(strings.Join(lines, "\n"), MaxMessageLen)
}

func formatSample(smp domain.AttackSample, names map[int64]string, loc *time.Location) string {
	merged := names
	if smp.AttackerName != "" || smp.DefenderName != "" {
		merged = make(map[int64]string, len(names)+2)
		for k, v := range names {
			merged[k] = v
		}
		if smp.AttackerName != "" {
			merged[smp.AttackerID] = smp.AttackerName
		}
		if smp.DefenderName != "" {
			merged[smp.DefenderID] = smp.DefenderName
		}
	}

	tag := attacks.DisplayTag(attacks.Classify(smp.Result))
	line := fmt.Sprintf("%s `[%s]` `#%d` `%+.2f` %s -> %s",
		time.Unix(smp.Started, 0).In(loc).Format("15:04"),
		tag, smp.ID, smp.RespectGain,
		profileLink(smp.AttackerID, merged), profileLink(smp.DefenderID, merged))
	if smp.Mugged > 0 {
		line += " " + FormatMoney(smp.Mugged)
	}
	return line
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
