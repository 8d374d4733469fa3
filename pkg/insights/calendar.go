package insights

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/cypherlabdev/fixture-insights-service/internal/models"
)

// DefaultTimezone is the reference deployment's display timezone
const DefaultTimezone = "America/New_York"

// DateLayout is the YYYY-MM-DD bucket key format
const DateLayout = "2006-01-02"

// UnscheduledDateKey keys the trailing bucket for fixtures whose kickoff
// cannot be parsed
const UnscheduledDateKey = "TBD"

var kickoffLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ResolveLocation loads a timezone from the tz database. An empty name
// resolves to DefaultTimezone.
func ResolveLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		tz = DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// ParseKickoff parses an upstream kickoff timestamp. Timestamps without an
// offset are taken as UTC.
func ParseKickoff(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range kickoffLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DateKey returns the calendar date of t in loc as YYYY-MM-DD
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// TodayKey returns today's date key in loc
func TodayKey(now time.Time, loc *time.Location) string {
	return DateKey(now, loc)
}

// BucketByDate groups fixtures by their local calendar date in loc. Buckets
// are sorted by date key; fixtures within a bucket by kickoff, then match id.
// No fixture is dropped: unparseable kickoffs land in the UnscheduledDateKey
// bucket, which sorts last.
func BucketByDate(fixtures []models.Fixture, loc *time.Location) []models.DateBucket {
	if loc == nil {
		loc = time.UTC
	}

	grouped := make(map[string][]models.Fixture)
	for _, fixture := range fixtures {
		key := UnscheduledDateKey
		if kickoff, ok := kickoffOf(fixture); ok {
			key = DateKey(kickoff, loc)
		}
		grouped[key] = append(grouped[key], fixture)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareDateKeys)

	buckets := make([]models.DateBucket, 0, len(keys))
	for _, key := range keys {
		items := grouped[key]
		slices.SortStableFunc(items, compareFixtures)
		buckets = append(buckets, models.DateBucket{DateKey: key, Fixtures: items})
	}
	return buckets
}

func compareDateKeys(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == UnscheduledDateKey:
		return 1
	case b == UnscheduledDateKey:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

func compareFixtures(a, b models.Fixture) int {
	ka, okA := kickoffOf(a)
	kb, okB := kickoffOf(b)
	if okA && okB {
		if c := ka.Compare(kb); c != 0 {
			return c
		}
	} else if c := strings.Compare(a.UTCDate, b.UTCDate); c != 0 {
		return c
	}
	return cmp.Compare(a.MatchID, b.MatchID)
}

// kickoffOf prefers the parsed kickoff and falls back to parsing UTCDate, so
// fixtures decoded from a cached view bucket the same way
func kickoffOf(fixture models.Fixture) (time.Time, bool) {
	if !fixture.Kickoff.IsZero() {
		return fixture.Kickoff, true
	}
	return ParseKickoff(fixture.UTCDate)
}
