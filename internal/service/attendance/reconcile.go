package attendance

import (
	"sort"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
)

// reconcileMidnight regroups clock events for shifts that cross midnight.
// Clock machines record events against the calendar date they happen on,
// so a 22:00-06:00 shift leaves its exit event on the following date's
// record. Days must arrive in date order for one employee; the returned
// slice is a new sequence, with each fix-up applied as an explicit
// two-record transformation.
func (e *Engine) reconcileMidnight(days []attendance.DayRecord, events map[dayKey][]time.Time) []attendance.DayRecord {
	out := make([]attendance.DayRecord, len(days))
	copy(out, days)

	for i := range out {
		cur := &out[i]
		if cur.Shift == nil || !cur.Shift.CrossesMidnight || len(cur.Events) == 0 {
			continue
		}

		nextDate := cur.Date.AddDate(0, 0, 1)
		if i+1 < len(out) {
			fixed, next := e.borrowExit(*cur, out[i+1])
			out[i] = fixed
			out[i+1] = next
		} else {
			// Last day of the range: the following date is outside the
			// grid, so borrow straight from the event snapshot.
			spill := events[e.keyFor(cur.EmployeeID, nextDate)]
			phantom := attendance.DayRecord{EmployeeID: cur.EmployeeID, Date: nextDate, Events: spill}
			fixed, _ := e.borrowExit(*cur, phantom)
			out[i] = fixed
		}
	}

	return out
}

// borrowExit moves the events of next that belong to cur's
// midnight-crossing shift onto cur, and returns updated copies of both
// records. Next-day events at or before the scheduled exit plus the grace
// window are attributed to cur; anything later starts next's own day.
func (e *Engine) borrowExit(cur, next attendance.DayRecord) (attendance.DayRecord, attendance.DayRecord) {
	cutoff := cur.Shift.Exit.At(next.Date, e.cfg.Location).Add(e.cfg.MidnightGrace())

	var borrowed, remaining []time.Time
	for _, ev := range next.Events {
		if !ev.After(cutoff) {
			borrowed = append(borrowed, ev)
		} else {
			remaining = append(remaining, ev)
		}
	}

	if len(borrowed) > 0 {
		cur.Events = append(append([]time.Time{}, cur.Events...), borrowed...)
		sort.Slice(cur.Events, func(i, j int) bool { return cur.Events[i].Before(cur.Events[j]) })
		next.Events = remaining
	}
	// No spill-over found: the shift's exit falls back to the latest
	// event within cur itself, which classify derives naturally.

	cur.Worked = shiftDuration(cur.Events)
	next.Worked = shiftDuration(next.Events)
	return cur, next
}

// shiftDuration computes worked time as last minus first event. A lone
// event cannot prove a span. A negative span means the exit clock-time is
// numerically behind the entry, i.e. really on the next day, so a full
// day is added; negative durations never escape.
func shiftDuration(events []time.Time) time.Duration {
	if len(events) < 2 {
		return 0
	}
	d := events[len(events)-1].Sub(events[0])
	if d < 0 {
		d += 24 * time.Hour
	}
	return d
}
