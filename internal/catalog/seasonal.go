package catalog

import "time"

// SeasonalEvent is a recurring calendar window, such as a signing period.
// The window may wrap across the year boundary (e.g. Dec 20 – Feb 5).
type SeasonalEvent struct {
	Key        string
	Sport      string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// ActiveOn reports whether t falls inside the event's window, inclusive on
// both ends. Only month and day are compared; the year is ignored.
func (e SeasonalEvent) ActiveOn(t time.Time) bool {
	now := monthDay(t.Month(), t.Day())
	start := monthDay(e.StartMonth, e.StartDay)
	end := monthDay(e.EndMonth, e.EndDay)

	if start <= end {
		return now >= start && now <= end
	}
	// Window wraps the year boundary.
	return now >= start || now <= end
}

func monthDay(m time.Month, d int) int {
	return int(m)*100 + d
}

// ActiveEventKeys returns the keys of the events active at t for the given
// sport. Events with an empty sport apply to all sports.
func ActiveEventKeys(events []SeasonalEvent, sport string, t time.Time) []string {
	var keys []string
	for _, e := range events {
		if e.Sport != "" && e.Sport != sport {
			continue
		}
		if e.ActiveOn(t) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
