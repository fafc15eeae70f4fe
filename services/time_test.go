package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleTime(t *testing.T) {
	t.Run("ZoneLessValuesAreLocalWallClock", func(t *testing.T) {
		for _, value := range []string{"2026-07-01T10:00", "2026-07-01 10:00"} {
			got := parseFlexibleTime(value)
			require.NotNil(t, got, value)
			want := time.Date(2026, 7, 1, 10, 0, 0, 0, time.Local)
			assert.True(t, got.Equal(want), "parsed %q as %v, want %v", value, got, want)
		}
	})

	t.Run("DateOnly", func(t *testing.T) {
		got := parseFlexibleTime("2026-07-01")
		require.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)))
	})

	t.Run("ExplicitOffsetIsKept", func(t *testing.T) {
		got := parseFlexibleTime("2026-07-01T10:00:00Z")
		require.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("UnparseableAndEmptyAreNil", func(t *testing.T) {
		assert.Nil(t, parseFlexibleTime("not a date"))
		assert.Nil(t, parseFlexibleTime(""))
	})
}
