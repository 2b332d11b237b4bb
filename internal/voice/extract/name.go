package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLen bounds the extracted task name, in characters.
const MaxNameLen = 100

const minNameLen = 3

var (
	fillerPrefixRe   = regexp.MustCompile(`(?i)^(?:can you|could you|please|i need to|i want to|i have to|i should|let me)\s+`)
	creationPrefixRe = regexp.MustCompile(`(?i)^(?:create|make|add|set|schedule|plan)\s+(?:a\s+)?(?:task|reminder|note|todo|to[-\s]?do)(?:\s+to|\s+for)?\s*`)
)

// Words and phrases that start the metadata part of an utterance.
var metadataKeywordRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join([]string{
	// time
	"due", "deadline", "by", "at", "on", "time", "schedule", "scheduled",
	"today", "tomorrow", "tonight", "morning", "afternoon", "evening", "night",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"next", "this", "week", "month", "year",
	// duration
	"duration", "for", "takes", "lasting",
	// priority and category
	"priority", "urgent", "important", "asap", "critical",
	"work", "personal", "category",
	// reminder
	"remind", "reminder", "notify", "notification", "alert",
	// filler
	"please", `need\s+to`, `have\s+to`, `want\s+to`, "should", "must",
	"also", `and\s+then`, `after\s+that`,
}, "|") + `)\b`)

var timeLikeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`),
}

var (
	trailingConnectiveRe = regexp.MustCompile(`(?i)(?:^|[\s,;]+)(?:and|then|also|with)$`)
	trailingPunctRe      = regexp.MustCompile(`[\s,;:.!?-]+$`)

	actionRe = regexp.MustCompile(`(?i)\b(call|email|send|buy|get|pick up|drop off|meet|visit|check|review|complete|finish|submit|prepare|organize|clean|fix|update|write|read|study|practice|exercise|cook|book|pay|cancel|confirm)\s+([^,;.]+)`)
	// the object of an action ends at the next metadata word
	actionBoundaryRe = regexp.MustCompile(`(?i)\s+(?:by|at|on|due|for|duration|priority|remind|and|then)\b`)

	sentenceEndRe = regexp.MustCompile(`[,;.]`)
)

// metadataStart returns the byte offset where the metadata part of text
// begins, or len(text).
func metadataStart(text string) int {
	earliest := len(text)
	if loc := metadataKeywordRe.FindStringIndex(text); loc != nil && loc[0] < earliest {
		earliest = loc[0]
	}
	for _, re := range timeLikeRes {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] < earliest {
			earliest = loc[0]
		}
	}
	return earliest
}

func stripCommandPrefix(text string) string {
	cleaned := strings.TrimSpace(text)
	for {
		next := fillerPrefixRe.ReplaceAllString(cleaned, "")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	return strings.TrimSpace(creationPrefixRe.ReplaceAllString(cleaned, ""))
}

func trimTrailingNoise(s string) string {
	for {
		next := trailingPunctRe.ReplaceAllString(s, "")
		next = trailingConnectiveRe.ReplaceAllString(next, "")
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
}

// ExtractName derives a short task name from normalized text.
func ExtractName(text string) string {
	cleaned := stripCommandPrefix(text)
	name := trimTrailingNoise(whitespaceRe.ReplaceAllString(cleaned[:metadataStart(cleaned)], " "))

	if utf8.RuneCountInString(name) < minNameLen {
		if m := actionRe.FindStringSubmatch(text); m != nil {
			object := m[2]
			if loc := actionBoundaryRe.FindStringIndex(object); loc != nil {
				object = object[:loc[0]]
			}
			if object = strings.TrimSpace(object); object != "" {
				name = m[1] + " " + object
			}
		}
	}

	if utf8.RuneCountInString(name) < minNameLen {
		first := text
		if loc := sentenceEndRe.FindStringIndex(text); loc != nil {
			first = text[:loc[0]]
		}
		name = stripCommandPrefix(first)
	}

	return capitalize(truncate(name, MaxNameLen))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
