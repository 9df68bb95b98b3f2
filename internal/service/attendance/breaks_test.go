package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakTimePairsInteriorEvents(t *testing.T) {
	e := newTestEngine()

	// entry, break out, break in, exit
	got := e.breakTime([]time.Time{
		at(2024, time.June, 3, 8, 0),
		at(2024, time.June, 3, 13, 0),
		at(2024, time.June, 3, 13, 45),
		at(2024, time.June, 3, 17, 0),
	})
	assert.Equal(t, 45*time.Minute, got)
}

func TestBreakTimeTwoBreaks(t *testing.T) {
	e := newTestEngine()

	got := e.breakTime([]time.Time{
		at(2024, time.June, 3, 8, 0),
		at(2024, time.June, 3, 11, 0),
		at(2024, time.June, 3, 11, 20),
		at(2024, time.June, 3, 15, 0),
		at(2024, time.June, 3, 15, 30),
		at(2024, time.June, 3, 18, 0),
	})
	assert.Equal(t, 50*time.Minute, got)
}

func TestBreakTimeFewerThanFourEvents(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, time.Duration(0), e.breakTime(nil))
	assert.Equal(t, time.Duration(0), e.breakTime([]time.Time{
		at(2024, time.June, 3, 8, 0),
		at(2024, time.June, 3, 13, 0),
		at(2024, time.June, 3, 17, 0),
	}))
}

func TestBreakTimeIgnoresNoiseIntervals(t *testing.T) {
	e := newTestEngine()

	// 3-minute gap is under the 5-minute floor: a double scan, not a break.
	got := e.breakTime([]time.Time{
		at(2024, time.June, 3, 8, 0),
		at(2024, time.June, 3, 13, 0),
		at(2024, time.June, 3, 13, 3),
		at(2024, time.June, 3, 17, 0),
	})
	assert.Equal(t, time.Duration(0), got)
}

func TestBreakTimeOddEventCount(t *testing.T) {
	e := newTestEngine()

	// Five events: the dangling interior event cannot form a pair with
	// the day's exit.
	got := e.breakTime([]time.Time{
		at(2024, time.June, 3, 8, 0),
		at(2024, time.June, 3, 12, 0),
		at(2024, time.June, 3, 12, 30),
		at(2024, time.June, 3, 15, 0),
		at(2024, time.June, 3, 17, 0),
	})
	assert.Equal(t, 30*time.Minute, got)
}
