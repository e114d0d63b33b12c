package stats

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod returns the period named by s. Unknown names resolve to PeriodAll and ok=false.
func ParsePeriod(s string) (_ Period, ok bool) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodAll, PeriodWeek, PeriodMonth, PeriodYear:
		return p, true
	default:
		return PeriodAll, false
	}
}

// Start returns the first instant of the period containing now, in loc.
// Weeks start on Monday. PeriodAll has no lower bound and returns false.
func (p Period) Start(now time.Time, loc *time.Location) (time.Time, bool) {
	t := now.In(loc)
	y, m, d := t.Date()

	switch p {
	case PeriodWeek:
		daysSinceMonday := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-daysSinceMonday, 0, 0, 0, 0, loc), true
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case PeriodYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, false
	}
}
