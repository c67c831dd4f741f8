package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	simple, ok := ParseFlexibleDate("2025-01-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), simple)

	rfc, ok := ParseFlexibleDate("2025-01-01T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC), rfc)

	offset, ok := ParseFlexibleDate("2025-01-01T10:30:00+02:00")
	require.True(t, ok)
	assert.Equal(t, 8, offset.UTC().Hour())

	bare, ok := ParseFlexibleDate("2025-01-01T10:30:00")
	require.True(t, ok)
	assert.Equal(t, 10, bare.Hour())

	for _, bad := range []string{"", "tomorrow", "01/02/2025", "2025-13-40"} {
		_, ok := ParseFlexibleDate(bad)
		assert.False(t, ok, "input=%q", bad)
	}
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	in := time.Date(2025, 6, 15, 23, 59, 59, 1000, loc)
	out := startOfDay(in)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}
