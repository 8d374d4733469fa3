package insights

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

type teamKind int

const (
	teamInvalid teamKind = iota
	teamByName
	teamByObject
)

// RawTeam is a team value as it arrives on the wire: a bare name string or
// an {id, name} object. Decoding never fails; anything else is kept as an
// invalid team and normalizes to the unknown team.
type RawTeam struct {
	kind teamKind
	id   *int
	name string
}

// UnmarshalJSON discriminates the team shape
func (t *RawTeam) UnmarshalJSON(data []byte) error {
	*t = RawTeam{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return nil
		}
		t.kind = teamByName
		t.name = name
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		t.kind = teamByObject
		if id, ok := parseInt(obj["id"]); ok {
			v := int(id)
			t.id = &v
		}
		if rawName, ok := obj["name"]; ok {
			var name string
			if err := json.Unmarshal(rawName, &name); err == nil {
				t.name = name
			}
		}
	}

	return nil
}

// Ref converts the wire team into its canonical form
func (t RawTeam) Ref() models.TeamRef {
	name := strings.TrimSpace(t.name)
	if name == "" {
		name = models.UnknownTeamName
	}

	switch t.kind {
	case teamByName:
		return models.TeamRef{Name: name}
	case teamByObject:
		return models.TeamRef{ID: t.id, Name: name}
	default:
		return models.TeamRef{Name: models.UnknownTeamName}
	}
}

// RawCompetition accepts either a competition name or a {code, name} object
type RawCompetition struct {
	value models.Competition
}

// UnmarshalJSON never fails; unrecognised shapes leave the competition empty
func (c *RawCompetition) UnmarshalJSON(data []byte) error {
	*c = RawCompetition{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err == nil {
			c.value.Name = strings.TrimSpace(name)
		}
	case '{':
		var obj struct {
			Code json.RawMessage `json:"code"`
			Name json.RawMessage `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err == nil {
			c.value.Code = parseString(obj.Code)
			c.value.Name = parseString(obj.Name)
		}
	}

	return nil
}

// Competition returns the canonical competition
func (c RawCompetition) Competition() models.Competition {
	return c.value
}

// tagList keeps the string elements of a tags array and ignores everything else
type tagList []string

func (l *tagList) UnmarshalJSON(data []byte) error {
	*l = nil

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '"' {
			continue
		}
		var tag string
		if err := json.Unmarshal(item, &tag); err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	*l = tags

	return nil
}

// wireFixture is the fixture body, either bare or nested under "fixture"
type wireFixture struct {
	MatchID     json.RawMessage `json:"matchId"`
	UTCDate     json.RawMessage `json:"utcDate"`
	Status      json.RawMessage `json:"status"`
	Matchday    json.RawMessage `json:"matchday"`
	Competition RawCompetition  `json:"competition"`
	HomeTeam    RawTeam         `json:"homeTeam"`
	AwayTeam    RawTeam         `json:"awayTeam"`
	Score       json.RawMessage `json:"score"`
	QuickTag    json.RawMessage `json:"quickTag"`
	Tags        tagList         `json:"tags"`
}

// wireEnvelope is the outer item of insight cards, ranking items and table rows
type wireEnvelope struct {
	Fixture  json.RawMessage `json:"fixture"`
	Tags     tagList         `json:"tags"`
	QuickTag json.RawMessage `json:"quickTag"`
	Score    json.RawMessage `json:"score"`
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// splitList decodes a JSON array into its elements; anything else yields nil
func splitList(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// parseInt accepts integral JSON numbers and numeric strings
func parseInt(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// parseFloat accepts JSON numbers only
func parseFloat(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || raw[0] == '{' || raw[0] == '[' || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// parseString returns the trimmed string value, or "" for any other JSON type
func parseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func parseOptionalString(raw json.RawMessage) *string {
	s := parseString(raw)
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(raw json.RawMessage) *float64 {
	f, ok := parseFloat(raw)
	if !ok {
		return nil
	}
	return &f
}

// lenientInt reads a count, accepting numeric strings and integral floats;
// anything else is 0
func lenientInt(raw json.RawMessage) int {
	n, _ := parseInt(raw)
	return int(n)
}

// lenientFloat reads a rate or average, accepting numeric strings; anything
// else is 0
func lenientFloat(raw json.RawMessage) float64 {
	if f, ok := parseFloat(raw); ok {
		return f
	}
	if f, err := strconv.ParseFloat(parseString(raw), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return 0
}

func parseOptionalInt(raw json.RawMessage) *int {
	n, ok := parseInt(raw)
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}
