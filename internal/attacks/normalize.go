package attacks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// Normalize converts an upstream item into a domain attack.
// Items without id, attacker id or start time are rejected with domain.ErrMalformedAttack.
func Normalize(in torn.Attack) (domain.Attack, error) {
	var attackerID int64
	if in.Attacker != nil {
		attackerID = in.Attacker.ID.Value
	}
	if in.ID.Value <= 0 || attackerID <= 0 || in.Started.Value <= 0 {
		return domain.Attack{}, fmt.Errorf("%w: id=%d attacker=%d started=%d",
			domain.ErrMalformedAttack, in.ID.Value, attackerID, in.Started.Value)
	}

	out := domain.Attack{
		ID:          in.ID.Value,
		AttackerID:  attackerID,
		Started:     in.Started.Value,
		RespectGain: in.RespectGain.Value,
		RespectLoss: in.RespectLoss.Value,
		Result:      cleanString(in.Result),
	}

	if in.Ended.Value > 0 {
		ended := in.Ended.Value
		out.Ended = &ended
	}
	out.AttackerName = cleanString(in.Attacker.Name)
	if in.Defender != nil {
		if in.Defender.ID.Value > 0 {
			id := in.Defender.ID.Value
			out.DefenderID = &id
		}
		out.DefenderName = cleanString(in.Defender.Name)
	}

	result := ""
	if out.Result != nil {
		result = *out.Result
	}
	out.Tags = Classify(result)

	if len(in.Raw) > 0 {
		if out.Tags.Has(domain.TagMug) {
			out.Mugged = ExtractMugged(in.Raw)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, in.Raw); err == nil {
			out.Raw = buf.Bytes()
		}
	}

	return out, nil
}

// Sample builds the sync report view of an attack
func Sample(a domain.Attack) domain.AttackSample {
	s := domain.AttackSample{
		ID:          a.ID,
		Started:     a.Started,
		AttackerID:  a.AttackerID,
		RespectGain: a.RespectGain,
		Mugged:      a.Mugged,
	}
	if a.AttackerName != nil {
		s.AttackerName = *a.AttackerName
	}
	if a.DefenderID != nil {
		s.DefenderID = *a.DefenderID
	}
	if a.DefenderName != nil {
		s.DefenderName = *a.DefenderName
	}
	if a.Result != nil {
		s.Result = *a.Result
	}
	return s
}

func cleanString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
