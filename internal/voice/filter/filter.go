// Package filter turns a query utterance ("show me urgent work tasks for
// today") into voice.FilterCriteria.
package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/datemath"
)

// MinSearchTextLen is the shortest search text kept when a category was
// also detected.
const MinSearchTextLen = 3

type keywordRule[T any] struct {
	regex *regexp.Regexp
	value T
}

var priorityRules = []keywordRule[model.Priority]{
	{regex: regexp.MustCompile(`\b(?:high|urgent|critical|important|asap)\b`), value: model.PriorityHigh},
	{regex: regexp.MustCompile(`\b(?:low|less important|not urgent)\b`), value: model.PriorityLow},
	{regex: regexp.MustCompile(`\b(?:medium|normal|regular)\b`), value: model.PriorityMedium},
}

var categoryRules = []keywordRule[model.Category]{
	{regex: regexp.MustCompile(`\b(?:work|office|project|meeting|client|report)\b`), value: model.CategoryWork},
	{regex: regexp.MustCompile(`\b(?:personal|home|family|grocer\w*|shopping|self|health)\b`), value: model.CategoryPersonal},
	{regex: regexp.MustCompile(`\b(?:urgent|emergency|immediate)\b`), value: model.CategoryUrgent},
	{regex: regexp.MustCompile(`\b(?:other|misc|general)\b`), value: model.CategoryOther},
}

var (
	dueTodayRe    = regexp.MustCompile(`\b(?:today|tonight|this day)\b`)
	maxDurationRe = regexp.MustCompile(`\b(\d+)\s*(minutes|minute|mins|min|hours|hour|hrs|hr)\b`)
	hourUnitRe    = regexp.MustCompile(`^(?:hours?|hrs?)$`)

	possessiveRe = regexp.MustCompile(`\b(\w+)['’]s\b`)
	stopWordRe   = regexp.MustCompile(`\b(?:show|list|find|filter|tell|me|tasks?|about|of|for|where|that|to|the|my|at|in|on|with|which|are|by|from|who|whose|having|have|i|a|an|is|can|could|do|done|finish|need|please|what|all|any)\b`)
	domainWordRe = regexp.MustCompile(`\b(?:high|low|medium|normal|regular|urgent|asap|personal|work|today|tonight|this day|minutes?|mins?|hours?|hrs?|priority|important|critical|category)\b`)
	connectorRe  = regexp.MustCompile(`(?:\b(?:or|and)\s+)?\b(?:challenge|category|type|kind|group)\b`)
	edgeJoinRe   = regexp.MustCompile(`^(?:(?:and|or)\b\s*)+|(?:\s*\b(?:and|or))+$`)
	edgePunctRe  = regexp.MustCompile(`^[\s.,!?;:]+|[\s.,!?;:]+$`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// Parser extracts filter criteria. It is safe for concurrent use.
type Parser struct {
	dates            *datemath.Parser
	minSearchTextLen int
}

// New returns a Parser resolving clock times in the location of dates.
// A non-positive minSearchTextLen falls back to MinSearchTextLen.
func New(dates *datemath.Parser, minSearchTextLen int) *Parser {
	if minSearchTextLen <= 0 {
		minSearchTextLen = MinSearchTextLen
	}
	return &Parser{dates: dates, minSearchTextLen: minSearchTextLen}
}

// Parse extracts filter criteria from text relative to now.
func (p *Parser) Parse(text string, now time.Time) voice.FilterCriteria {
	text = strings.ToLower(strings.TrimSpace(spaceRe.ReplaceAllString(text, " ")))

	var out voice.FilterCriteria
	if v, ok := first(priorityRules, text); ok {
		out.Priority = v
	}
	if v, ok := first(categoryRules, text); ok {
		out.Category = v
	}

	out.DueToday = dueTodayRe.MatchString(text)

	var phrases []string
	if r, ok := p.dates.ParseNatural(text, now); ok && r.Clock {
		out.DueTime = r.Time()
		phrases = append(phrases, strings.TrimSpace(r.Matched))
	}

	if m := maxDurationRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if hourUnitRe.MatchString(m[2]) {
				n *= 60
			}
			out.MaxDuration = &n
			phrases = append(phrases, m[0])
		}
	}

	search := searchText(text, phrases...)
	if out.Category != "" && len([]rune(search)) < p.minSearchTextLen {
		search = ""
	}
	out.SearchText = search

	if out.IsEmpty() {
		out.SearchText = text
	}
	return out
}

// searchText strips filler, classified keywords and the matched time and
// duration phrases, leaving the free-text part of the query.
func searchText(text string, phrases ...string) string {
	s := text
	for _, phrase := range phrases {
		if phrase != "" {
			s = strings.Replace(s, phrase, " ", 1)
		}
	}
	s = possessiveRe.ReplaceAllString(s, "$1")
	s = stopWordRe.ReplaceAllString(s, " ")
	s = domainWordRe.ReplaceAllString(s, " ")
	s = connectorRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	s = edgeJoinRe.ReplaceAllString(s, "")
	s = edgePunctRe.ReplaceAllString(s, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func first[T any](rules []keywordRule[T], text string) (T, bool) {
	for _, r := range rules {
		if r.regex.MatchString(text) {
			return r.value, true
		}
	}
	var zero T
	return zero, false
}
