package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalName_NFC(t *testing.T) {
	// "é" composed (U+00E9) vs decomposed (e + U+0301).
	composed := "café"
	decomposed := "café"

	assert.Equal(t, CanonicalName(composed), CanonicalName(decomposed))
	assert.Equal(t, composed, CanonicalName(decomposed))
}

func TestCanonicalName_PreservesWhitespace(t *testing.T) {
	assert.Equal(t, "  deep work  ", CanonicalName("  deep work  "))
}

func TestNewClosedInterval(t *testing.T) {
	start := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

	iv, err := NewClosedInterval("coding", start, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, iv.Open())
	assert.Equal(t, 30*time.Minute, iv.Duration(start.Add(2*time.Hour)))

	// Zero-length intervals are valid.
	iv, err = NewClosedInterval("coding", start, start)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), iv.Duration(start))

	_, err = NewClosedInterval("coding", start, start.Add(-time.Second))
	require.Error(t, err)
	assert.Equal(t, KindInvariantViolation, KindOf(err))
}

func TestInterval_OpenDurationTracksNow(t *testing.T) {
	start := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	iv := NewOpenInterval("coding", start)

	assert.True(t, iv.Open())
	assert.Equal(t, 45*time.Minute, iv.Duration(start.Add(45*time.Minute)))
}

func TestInterval_Equal(t *testing.T) {
	start := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	open := NewOpenInterval("coding", start)
	closed := open.WithEnd(start.Add(time.Hour))

	assert.True(t, open.Equal(NewOpenInterval("coding", start)))
	assert.False(t, open.Equal(closed))
	assert.True(t, closed.Equal(closed.WithTask("coding")))
	assert.False(t, closed.Equal(closed.WithTask("review")))

	// Same instant in a different location still compares equal.
	inUTC := NewOpenInterval("coding", start)
	inFixed := NewOpenInterval("coding", start.In(time.FixedZone("X", 3600)))
	assert.True(t, inUTC.Equal(inFixed))
}
