package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Tag classifies an attack outcome. An attack can carry several tags.
type Tag string

const (
	TagMug         Tag = "mug"
	TagHospitalize Tag = "hospitalize"
	TagAssist      Tag = "assist"
	TagLoss        Tag = "loss"
	TagOther       Tag = "other"
)

// TagSet is a set of tags attached to one attack.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from the given tags
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// String renders the set sorted, comma separated
func (s TagSet) String() string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// Attack is one normalized faction attack event.
// Optional upstream fields are pointers so that re-ingestion can merge
// without overwriting known values with missing ones.
type Attack struct {
	ID           int64
	AttackerID   int64
	AttackerName *string
	DefenderID   *int64
	DefenderName *string
	Started      int64
	Ended        *int64
	Result       *string
	RespectGain  float64
	RespectLoss  float64
	Mugged       float64
	Tags         TagSet
	Raw          json.RawMessage
}

// ActorTotals holds running aggregates for a single attacker.
type ActorTotals struct {
	AttackerID       int64   `json:"attacker_id"`
	Attacks          int64   `json:"attacks"`
	Mugs             int64   `json:"mugs"`
	Hospitalizations int64   `json:"hospitalizations"`
	RespectGain      float64 `json:"respect_gain"`
	RespectLoss      float64 `json:"respect_loss"`
	Mugged           float64 `json:"mugged"`
	BestMug          float64 `json:"best_mug"`
}

// AttackSample is a lightweight view of a newly inserted attack used for sync reports.
type AttackSample struct {
	ID           int64   `json:"id"`
	Started      int64   `json:"started"`
	AttackerID   int64   `json:"attacker_id"`
	AttackerName string  `json:"attacker_name,omitempty"`
	DefenderID   int64   `json:"defender_id,omitempty"`
	DefenderName string  `json:"defender_name,omitempty"`
	Result       string  `json:"result,omitempty"`
	RespectGain  float64 `json:"respect_gain"`
	Mugged       float64 `json:"mugged"`
}

// ParseTagSet reverses TagSet.String
func ParseTagSet(s string) TagSet {
	set := NewTagSet()
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			set[Tag(part)] = struct{}{}
		}
	}
	return set
}
