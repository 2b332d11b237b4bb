package extract

import (
	"regexp"
	"strings"
)

// Prompt scaffolding that callers sometimes send along with the transcript.
var contextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*today is[\s\S]*?current time.*?\n`),
	regexp.MustCompile(`(?i)^\s*extract task information from this voice input:\s*`),
	regexp.MustCompile(`(?i)^\s*extract task information[\s\S]*?:\s*`),
	regexp.MustCompile(`(?i)\brules:[\s\S]*$`),
}

var (
	quoteRe      = regexp.MustCompile(`["“”]`)
	apostropheRe = regexp.MustCompile(`[‘’]`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	dottedMeridiemRe = regexp.MustCompile(`(?i)(\d)(\s*)([ap])\.m\b\.?`)
	spacedClockRe    = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(\d{2})\s*([ap]m)\b`)
	packedClockRe    = regexp.MustCompile(`(?i)\b(\d{1,2})(\d{2})\s*([ap]m)\b`)
	dottedNumberRe   = regexp.MustCompile(`\d+(?:\.\d+)+`)
	dottedClockRe    = regexp.MustCompile(`^(\d{1,2})\.(\d{2})$`)
	meridiemRe       = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?)\s*([ap]m)\b`)
)

// Normalize strips prompt scaffolding and quotes from raw input and rewrites
// scattered time notation into the canonical "H:MM am" form.
func Normalize(raw string) string {
	return normalizeTimeNotation(stripContext(raw))
}

func stripContext(text string) string {
	cleaned := text
	for _, re := range contextPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(quoteRe.ReplaceAllString(cleaned, ""))
	cleaned = apostropheRe.ReplaceAllString(cleaned, "'")

	if strings.HasPrefix(strings.ToLower(cleaned), "extract") {
		if i := strings.Index(cleaned, ":"); i != -1 {
			cleaned = strings.TrimSpace(cleaned[i+1:])
		}
	}
	return cleaned
}

func normalizeTimeNotation(s string) string {
	s = dottedMeridiemRe.ReplaceAllString(s, "${1}${2}${3}m")
	s = spacedClockRe.ReplaceAllString(s, "$1:$2 $3")
	s = packedClockRe.ReplaceAllString(s, "$1:$2 $3")
	s = dottedNumberRe.ReplaceAllStringFunc(s, func(tok string) string {
		return dottedClockRe.ReplaceAllString(tok, "$1:$2")
	})
	s = meridiemRe.ReplaceAllStringFunc(s, func(tok string) string {
		m := meridiemRe.FindStringSubmatch(tok)
		return m[1] + " " + strings.ToLower(m[2])
	})
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
