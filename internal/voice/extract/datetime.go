package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"voice-task-parser/pkg/datemath"
)

// DueDateTime holds the resolved due date and wall-clock time. Either may
// be empty.
type DueDateTime struct {
	Date string
	Time string
}

// Time tokens in priority order: context phrase + H:MM am/pm, any
// H:MM am/pm, bare H am/pm.
var timeTokenRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:at|around|due time is|due time|time is|schedule is|scheduled at)\b\s*(\d{1,2}:\d{2}\s*(?:am|pm))\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm))\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}\s*(?:am|pm))\b`),
}

var clockTokenRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// findTimeToken returns the hour and minute of the first time token.
func findTimeToken(text string) (hour, minute int, ok bool) {
	for _, re := range timeTokenRules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if h, mm, valid := to24Hour(m[1]); valid {
			return h, mm, true
		}
	}
	return 0, 0, false
}

// to24Hour converts "5:30 pm", "12 am", "7:05" to 24-hour components.
func to24Hour(token string) (int, int, bool) {
	m := clockTokenRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// ResolveDueDateTime resolves the due date and time of text relative to now,
// in the reference location of dates.
//
// An explicit time token wins and lands on today, or on the day named by a
// day cue ("tomorrow", "next friday") when one is present. Otherwise the
// general natural-language parser is consulted; its wall-clock time is only
// kept when the matched phrase carried a clock or a sub-day offset.
func ResolveDueDateTime(text string, now time.Time, dates *datemath.Parser) DueDateTime {
	loc := dates.Location()
	localNow := dates.Now(now)

	if hour, minute, ok := findTimeToken(text); ok {
		day := localNow
		if d, found := dates.FindDay(text, now); found {
			day = d
		}
		due := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
		return DueDateTime{
			Date: due.Format(datemath.DateFormat),
			Time: due.Format(datemath.ClockFormat),
		}
	}

	r, ok := dates.ParseNatural(text, now)
	if !ok {
		return DueDateTime{}
	}
	out := DueDateTime{Date: r.Date()}
	if !r.IsAllDay {
		out.Time = r.Time()
	}
	return out
}

// ClockTime formats a loose clock token ("5 pm", "9:05", "12:30 am") as
// 24-hour HH:MM.
func ClockTime(token string) (string, bool) {
	h, m, ok := to24Hour(strings.ToLower(token))
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}
