package extract

import "regexp"

const unitAlt = `(hours?|hrs?|minutes?|mins?)`

var durationRules = []amountRule{
	{name: "duration", regex: regexp.MustCompile(`(?i)\bduration\s*(?:is|:)?\s*([a-z0-9]+)\s*` + unitAlt + `\b`)},
	{name: "for", regex: regexp.MustCompile(`(?i)\bfor\s+([a-z0-9]+)\s*` + unitAlt + `\b`)},
	{name: "takes", regex: regexp.MustCompile(`(?i)\btakes?\s+([a-z0-9]+)\s*` + unitAlt + `\b`)},
}

// ExtractDuration returns the task duration in minutes, or nil when the
// text carries no duration phrase.
func ExtractDuration(text string) *int {
	if minutes, ok := firstAmount(durationRules, text); ok {
		return &minutes
	}
	return nil
}
