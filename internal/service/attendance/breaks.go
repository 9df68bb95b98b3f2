package attendance

import "time"

// breakTime estimates total break duration from interior clock events.
// With four or more events the interior ones pair up as break-out /
// break-in couples: (events[1], events[2]), (events[3], events[4]), and
// so on. Pairs touching the day's overall first or last event are
// skipped so an entry or exit is never mistaken for a break boundary,
// and intervals at or under the noise floor are discarded. The result is
// reported only; it does not reduce worked or expected hours here.
func (e *Engine) breakTime(events []time.Time) time.Duration {
	if len(events) < 4 {
		return 0
	}

	first := events[0]
	last := events[len(events)-1]
	minBreak := e.cfg.MinBreak()

	var total time.Duration
	for i := 1; i+1 < len(events); i += 2 {
		out, in := events[i], events[i+1]
		if out.Equal(first) || out.Equal(last) || in.Equal(first) || in.Equal(last) {
			continue
		}
		interval := in.Sub(out)
		if interval > 0 && interval > minBreak {
			total += interval
		}
	}
	return total
}
