package datemath

import "time"

// DateFormat and ClockFormat are the wire layouts for dates and times.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// ParseResult holds the result of parsing a natural-language date phrase.
type ParseResult struct {
	AbsoluteTime time.Time // in the parser's location
	IsAllDay     bool      // the phrase named a day only, no clock time or sub-day offset
	Matched      string    // source fragment the result came from
	Clock        bool      // the phrase carried an explicit clock time (5pm, 17:30, noon)
}

// Date formats the result's day as YYYY-MM-DD.
func (r ParseResult) Date() string {
	return r.AbsoluteTime.Format(DateFormat)
}

// Time formats the result's wall clock as HH:MM.
func (r ParseResult) Time() string {
	return r.AbsoluteTime.Format(ClockFormat)
}
