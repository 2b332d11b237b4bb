package remote

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/pkg/datemath"
)

var (
	codeFenceRe     = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// stripCodeFences returns the body of the first fenced block, or text
// unchanged when there is none.
func stripCodeFences(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.Trim(text, "`"))
}

// findObject returns the first brace-balanced {...} span of text. Braces
// inside JSON strings are ignored. When the object never closes it falls
// back to the span from the first '{' to the last '}'.
func findObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	end := strings.LastIndexByte(text, '}')
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// parseJSON attempts the strict path: fences stripped, first object located,
// trailing commas dropped, numbers kept as json.Number.
func parseJSON(text string) (map[string]any, bool) {
	obj, ok := findObject(stripCodeFences(text))
	if !ok {
		return nil, false
	}
	obj = trailingCommaRe.ReplaceAllString(obj, "$1")

	dec := json.NewDecoder(bytes.NewReader([]byte(obj)))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, false
	}
	return out, true
}

// Labelled lines as the model writes them when it ignores the JSON
// instruction, optionally bulleted or bolded: "**Task Name:** Call mom".
func labelRe(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[\s*\-•]*` + label + `[\s*]*:[\s*]*(.+?)\s*$`)
}

var scrapeFields = []struct {
	key string
	re  *regexp.Regexp
}{
	{"name", labelRe(`(?:task\s*name|name|title)`)},
	{"description", labelRe(`description`)},
	{"dueDate", labelRe(`(?:due\s*)?date`)},
	{"dueTime", labelRe(`(?:due\s*)?time`)},
	{"duration", labelRe(`duration`)},
	{"reminderMinutes", labelRe(`reminder`)},
}

var (
	scrapeHighRe     = regexp.MustCompile(`(?i)\bhigh\b`)
	scrapeLowRe      = regexp.MustCompile(`(?i)\blow\b`)
	scrapeWorkRe     = regexp.MustCompile(`(?i)\bwork\b`)
	scrapePersonalRe = regexp.MustCompile(`(?i)\bpersonal\b`)
	isoDateRe        = regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}`)
)

// scrapeText is the bounded fallback for replies that are not JSON. It only
// reads labelled lines and four keywords; the result still goes through
// schema decoding. Relative dates ("tomorrow") are resolved against now.
func scrapeText(text string, now time.Time, dates *datemath.Parser) map[string]any {
	out := map[string]any{}
	for _, f := range scrapeFields {
		if m := f.re.FindStringSubmatch(text); m != nil {
			v := strings.Trim(strings.TrimSpace(m[1]), `"'*`)
			if v != "" {
				out[f.key] = v
			}
		}
	}

	if d, ok := out["dueDate"].(string); ok && !isoDateRe.MatchString(d) {
		if r, found := dates.ParseNatural(d, now); found {
			out["dueDate"] = r.Date()
		} else {
			delete(out, "dueDate")
		}
	}

	switch {
	case scrapeHighRe.MatchString(text):
		out["priority"] = string(model.PriorityHigh)
	case scrapeLowRe.MatchString(text):
		out["priority"] = string(model.PriorityLow)
	}
	switch {
	case scrapeWorkRe.MatchString(text):
		out["category"] = string(model.CategoryWork)
	case scrapePersonalRe.MatchString(text):
		out["category"] = string(model.CategoryPersonal)
	}

	return out
}
