package shift

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMinutePartitionsTheDay(t *testing.T) {
	counts := map[Type]int{}
	for minute := 0; minute < 1440; minute++ {
		got := ClassifyMinute(minute)
		require.True(t, IsWorking(got), "minute %d mapped to non-working type %q", minute, got)
		counts[got]++
	}

	// Window widths: C 480 (22:30-06:30), A 180, General 300, B 480.
	assert.Equal(t, 480, counts[TypeC])
	assert.Equal(t, 180, counts[TypeA])
	assert.Equal(t, 300, counts[TypeGeneral])
	assert.Equal(t, 480, counts[TypeB])
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		clock string
		want  Type
	}{
		{"00:00", TypeC},
		{"06:29", TypeC},
		{"06:30", TypeA},
		{"09:29", TypeA},
		{"09:30", TypeGeneral},
		{"14:29", TypeGeneral},
		{"14:30", TypeB},
		{"22:29", TypeB},
		{"22:30", TypeC},
		{"23:59", TypeC},
	}
	for _, c := range cases {
		t.Run(c.clock, func(t *testing.T) {
			got, err := Classify(c.clock)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassifyRejectsMalformedClock(t *testing.T) {
	for _, clock := range []string{"", "0930", "24:00", "12:60", "ab:cd", "-1:00"} {
		_, err := Classify(clock)
		assert.Error(t, err, "clock %q", clock)
	}
}

func TestLateMinutes(t *testing.T) {
	cases := []struct {
		checkIn string
		shift   Type
		want    int
	}{
		// Night shift, same evening.
		{"22:30", TypeC, 0},
		{"23:05", TypeC, 35},
		// Night shift, past midnight: (1440-1350) + minute of day.
		{"00:00", TypeC, 90},
		{"06:00", TypeC, 450},
		// Night shift dead zone between 06:30 and 22:30 scores zero.
		{"06:30", TypeC, 0},
		{"07:00", TypeC, 0},
		{"12:00", TypeC, 0},
		{"22:29", TypeC, 0},
		// Ordinary shifts.
		{"09:45", TypeGeneral, 15},
		{"09:15", TypeGeneral, 0},
		{"09:30", TypeGeneral, 0},
		{"06:31", TypeA, 1},
		{"06:25", TypeA, 0},
		{"15:45", TypeB, 75},
		{"14:20", TypeB, 0},
		// Week off never accrues lateness.
		{"09:45", TypeOff, 0},
		{"23:59", TypeOff, 0},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%s", c.shift, c.checkIn), func(t *testing.T) {
			got, err := LateMinutes(c.checkIn, c.shift)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLateMinutesNeverNegative(t *testing.T) {
	for minute := 0; minute < 1440; minute++ {
		clock := fmt.Sprintf("%02d:%02d", minute/60, minute%60)
		for shiftType := range Times {
			got, err := LateMinutes(clock, shiftType)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0, "shift %s clock %s", shiftType, clock)
		}
	}
}

func TestLateMinutesRejectsMalformedClock(t *testing.T) {
	_, err := LateMinutes("25:00", TypeGeneral)
	assert.Error(t, err)
}
