package insights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

func TestRawTeam_Ref(t *testing.T) {
	id := 57

	tests := []struct {
		name     string
		raw      string
		expected models.TeamRef
	}{
		{name: "Name string", raw: `"Arsenal"`, expected: models.TeamRef{Name: "Arsenal"}},
		{name: "Object", raw: `{"id": 57, "name": " Arsenal "}`, expected: models.TeamRef{ID: &id, Name: "Arsenal"}},
		{name: "Object with string id", raw: `{"id": "57", "name": "Arsenal"}`, expected: models.TeamRef{ID: &id, Name: "Arsenal"}},
		{name: "Object without name", raw: `{"id": 57}`, expected: models.TeamRef{ID: &id, Name: models.UnknownTeamName}},
		{name: "Empty string", raw: `""`, expected: models.TeamRef{Name: models.UnknownTeamName}},
		{name: "Number", raw: `12`, expected: models.TeamRef{Name: models.UnknownTeamName}},
		{name: "Null", raw: `null`, expected: models.TeamRef{Name: models.UnknownTeamName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var team RawTeam
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &team))
			assert.Equal(t, tt.expected, team.Ref())
		})
	}
}

func TestRawCompetition(t *testing.T) {
	var byName, byObject, other RawCompetition

	require.NoError(t, json.Unmarshal([]byte(`" Premier League "`), &byName))
	require.NoError(t, json.Unmarshal([]byte(`{"code": "PL", "name": "Premier League"}`), &byObject))
	require.NoError(t, json.Unmarshal([]byte(`[1]`), &other))

	assert.Equal(t, models.Competition{Name: "Premier League"}, byName.Competition())
	assert.Equal(t, models.Competition{Code: "PL", Name: "Premier League"}, byObject.Competition())
	assert.Equal(t, models.Competition{}, other.Competition())
}

func TestTagList_KeepsStringsOnly(t *testing.T) {
	var tags tagList
	require.NoError(t, json.Unmarshal([]byte(`["High BTTS", 3, null, {"a": 1}, "Goals"]`), &tags))
	assert.Equal(t, tagList{"High BTTS", "Goals"}, tags)

	require.NoError(t, json.Unmarshal([]byte(`"High BTTS"`), &tags))
	assert.Nil(t, tags)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
		ok       bool
	}{
		{name: "Integer", raw: `42`, expected: 42, ok: true},
		{name: "Numeric string", raw: `" 42 "`, expected: 42, ok: true},
		{name: "Integral float", raw: `42.0`, expected: 42, ok: true},
		{name: "Fraction", raw: `42.5`, ok: false},
		{name: "Text", raw: `"forty"`, ok: false},
		{name: "Null", raw: `null`, ok: false},
		{name: "Missing", raw: ``, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := parseInt(json.RawMessage(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "Number", raw: `0.55`, expected: 0.55, ok: true},
		{name: "Integer", raw: `1`, expected: 1, ok: true},
		{name: "Numeric string", raw: `"0.55"`, ok: false},
		{name: "Null", raw: `null`, ok: false},
		{name: "Object", raw: `{}`, ok: false},
		{name: "Boolean", raw: `true`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := parseFloat(json.RawMessage(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, f)
		})
	}
}
