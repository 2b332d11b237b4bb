package extract

import (
	"regexp"
	"strings"

	"voice-task-parser/internal/model"
)

var explicitPriorityRe = regexp.MustCompile(`(?i)\bpriority\s*(?:is|:)?\s*(low|medium|high)\b`)

var priorityRules = []keywordRule[model.Priority]{
	{regex: regexp.MustCompile(`(?i)\b(?:urgent|asap|important|critical)\b`), value: model.PriorityHigh},
	{regex: regexp.MustCompile(`(?i)\blow\s+priority\b`), value: model.PriorityLow},
}

// ExtractPriority resolves the task priority, defaulting to medium.
func ExtractPriority(text string) model.Priority {
	if m := explicitPriorityRe.FindStringSubmatch(text); m != nil {
		return model.Priority(strings.ToLower(m[1]))
	}
	if p, ok := firstKeyword(priorityRules, text); ok {
		return p
	}
	return model.PriorityMedium
}
