package attacks

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		result string
		want   []domain.Tag
	}{
		{"Mugged", []domain.Tag{domain.TagMug}},
		{"Hospitalized", []domain.Tag{domain.TagHospitalize}},
		{"Assist", []domain.Tag{domain.TagAssist}},
		{"Lost", []domain.Tag{domain.TagLoss}},
		{"Attacked", []domain.Tag{domain.TagOther}},
		{"", []domain.Tag{domain.TagOther}},
		{"Mugged and hospitalized", []domain.Tag{domain.TagMug, domain.TagHospitalize}},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			assert.Equal(t, domain.NewTagSet(tt.want...), Classify(tt.result))
		})
	}
}

func TestDisplayTag_Priority(t *testing.T) {
	assert.Equal(t, DisplayHosp, DisplayTag(domain.NewTagSet(domain.TagMug, domain.TagHospitalize)))
	assert.Equal(t, DisplayMug, DisplayTag(domain.NewTagSet(domain.TagMug)))
	assert.Equal(t, DisplayAssist, DisplayTag(domain.NewTagSet(domain.TagAssist)))
	assert.Equal(t, DisplayLost, DisplayTag(domain.NewTagSet(domain.TagLoss)))
	assert.Equal(t, DisplayAttack, DisplayTag(domain.NewTagSet(domain.TagOther)))
}

func TestExtractMugged(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"flat number", `{"money_mugged": 1500}`, 1500},
		{"numeric string", `{"mugged": "250.5"}`, 250.5},
		{"object amount", `{"money": {"amount": 900}}`, 900},
		{"object value", `{"cash": {"value": "42"}}`, 42},
		{"zero falls through", `{"money_mugged": 0, "cash": 77}`, 77},
		{"first sub-field decides", `{"money": {"amount": 0, "value": 5}}`, 0},
		{"garbage", `{"money_mugged": "lots"}`, 0},
		{"absent", `{"result": "Mugged"}`, 0},
		{"not an object", `[1,2]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMugged(json.RawMessage(tt.raw)))
		})
	}
}

func decodeAttack(t *testing.T, raw string) torn.Attack {
	t.Helper()
	var a torn.Attack
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return a
}

func TestNormalize(t *testing.T) {
	a := decodeAttack(t, `{
		"id": "101", "started": 1700000000, "ended": 0,
		"result": " Mugged ",
		"respect_gain": "2.5", "respect_loss": 0,
		"attacker": {"id": 7, "name": "  Alice "},
		"defender": {"id": 0, "name": ""},
		"money_mugged": 12000
	}`)

	got, err := Normalize(a)

	require.NoError(t, err)
	assert.Equal(t, int64(101), got.ID)
	assert.Equal(t, int64(7), got.AttackerID)
	require.NotNil(t, got.AttackerName)
	assert.Equal(t, "Alice", *got.AttackerName)
	assert.Nil(t, got.DefenderID)
	assert.Nil(t, got.DefenderName)
	assert.Nil(t, got.Ended)
	require.NotNil(t, got.Result)
	assert.Equal(t, "Mugged", *got.Result)
	assert.Equal(t, 2.5, got.RespectGain)
	assert.Equal(t, 12000.0, got.Mugged)
	assert.True(t, got.Tags.Has(domain.TagMug))
	assert.NotEmpty(t, got.Raw)
}

func TestNormalize_MuggedOnlyWhenTaggedMug(t *testing.T) {
	a := decodeAttack(t, `{"id": 1, "started": 10, "result": "Hospitalized",
		"attacker": {"id": 7}, "money_mugged": 500}`)

	got, err := Normalize(a)

	require.NoError(t, err)
	assert.Zero(t, got.Mugged)
}

func TestNormalize_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"no id":       `{"started": 10, "attacker": {"id": 7}}`,
		"no attacker": `{"id": 1, "started": 10}`,
		"no started":  `{"id": 1, "attacker": {"id": 7}}`,
		"garbled id":  `{"id": "abc", "started": 10, "attacker": {"id": 7}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(decodeAttack(t, raw))
			assert.True(t, errors.Is(err, domain.ErrMalformedAttack))
		})
	}
}
