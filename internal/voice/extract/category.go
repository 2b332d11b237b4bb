package extract

import (
	"regexp"
	"strings"

	"voice-task-parser/internal/model"
)

var explicitCategoryRe = regexp.MustCompile(`(?i)\bcategor(?:y|ies)\s*(?:is|are|:)?\s*(work|personal|urgent|other)\b`)

// Checked in order; the first matching set wins.
var categoryRules = []keywordRule[model.Category]{
	{regex: regexp.MustCompile(`(?i)\b(?:work|office|meeting|project|business)\b`), value: model.CategoryWork},
	{regex: regexp.MustCompile(`(?i)\b(?:personal|home|family|shopping|buy|grocery|market|health|fitness)\b`), value: model.CategoryPersonal},
	{regex: regexp.MustCompile(`(?i)\b(?:urgent|critical|emergency)\b`), value: model.CategoryUrgent},
}

// ExtractCategory resolves the task category, defaulting to other.
func ExtractCategory(text string) model.Category {
	if m := explicitCategoryRe.FindStringSubmatch(text); m != nil {
		return model.Category(strings.ToLower(m[1]))
	}
	if c, ok := firstKeyword(categoryRules, text); ok {
		return c
	}
	return model.CategoryOther
}
