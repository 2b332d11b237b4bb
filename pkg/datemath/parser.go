package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser converts relative and natural-language date phrases to absolute
// time.Time values in a single reference location.
type Parser struct {
	location *time.Location
	natural  *when.Parser
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return newParser(loc), nil
}

// NewFixedParser creates a parser anchored to a fixed UTC offset, e.g.
// NewFixedParser("IST", 330) for UTC+5:30.
func NewFixedParser(name string, offsetMinutes int) *Parser {
	return newParser(time.FixedZone(name, offsetMinutes*60))
}

func newParser(loc *time.Location) *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{location: loc, natural: w}
}

// Location returns the reference location of the parser.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns baseTime expressed in the parser's location.
func (p *Parser) Now(baseTime time.Time) time.Time {
	return baseTime.In(p.location)
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight", "this day":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, false)
	}

	// Handle "this <weekday>" / "on <weekday>"
	for _, prefix := range []string{"this ", "on "} {
		if strings.HasPrefix(relative, prefix) {
			return p.parseWeekday(strings.TrimPrefix(relative, prefix), baseTime, true)
		}
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

var dayCueRe = regexp.MustCompile(`(?i)\b(day after tomorrow|tomorrow|today|tonight|yesterday|in (?:\d+|a|an) (?:days?|weeks?|months?)|(?:next|this|on) (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)

// FindDay scans free text for the first day cue ("tomorrow", "in 3 days",
// "next friday", ...) and returns the start of that day.
func (p *Parser) FindDay(text string, baseTime time.Time) (time.Time, bool) {
	m := dayCueRe.FindString(text)
	if m == "" {
		return time.Time{}, false
	}
	day, err := p.Parse(m, baseTime)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

var (
	clockRe       = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\b|\b\d{1,2}\s*(?:am|pm)\b|\b(?:noon|midnight|o'?clock)\b`)
	subDayShiftRe = regexp.MustCompile(`(?i)\b(?:in|within|after)\s+(?:\d+|an?|one|two|three|four|five|ten|fifteen|twenty|thirty|half an?)\s*(?:min|mins|minutes?|hours?|hrs?)\b`)
)

// ParseNatural runs the general natural-language parser over text, anchored
// at baseTime in the parser's location, and reports what was found.
func (p *Parser) ParseNatural(text string, baseTime time.Time) (ParseResult, bool) {
	r, err := p.natural.Parse(text, p.Now(baseTime))
	if err != nil || r == nil {
		return ParseResult{}, false
	}

	matched := r.Text
	clock := clockRe.MatchString(matched)
	shift := subDayShiftRe.MatchString(matched)

	return ParseResult{
		AbsoluteTime: r.Time.In(p.location),
		IsAllDay:     !clock && !shift,
		Matched:      matched,
		Clock:        clock,
	}, true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+|a|an) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount := 1
	if matches[1] != "a" && matches[1] != "an" {
		amount, _ = strconv.Atoi(matches[1])
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// parseWeekday resolves a weekday name to the next such day. With allowToday
// the current day counts ("this friday" on a Friday is today).
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, allowToday bool) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.TrimSpace(dayName)]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil < 0 || (daysUntil == 0 && !allowToday) {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
