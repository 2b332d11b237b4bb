package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Metadata phrases removed from the description, applied in order.
var descriptionMetaRes = []*regexp.Regexp{
	// time and date
	regexp.MustCompile(`(?i)\b(?:due|deadline|by|at|on|scheduled?)\s+(?:date|time|is|:)?\s*[^,;.]*[,;.]?`),
	regexp.MustCompile(`(?i)\b(?:today|tomorrow|tonight|next\s+\w+|this\s+\w+)\b[^,;.]*`),
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`),
	// duration
	regexp.MustCompile(`(?i)\b(?:duration|for|takes?|lasting)\s*(?:is|:)?\s*` + numberAlt + `\s*(?:hours?|hrs?|minutes?|mins?)\b`),
	// priority
	regexp.MustCompile(`(?i)\b(?:priority(?:\s*(?:is|:))?\s*(?:low|medium|high)?|(?:low|medium|high)\s+priority|urgent|important|asap|critical)\b`),
	// category
	regexp.MustCompile(`(?i)\b(?:categor(?:y|ies)(?:\s*(?:is|are|:))?\s*(?:work|personal|urgent|other)?|work|personal)\b`),
	// reminder negation, then reminder offsets
	noReminderRe,
	regexp.MustCompile(`(?i)\b(?:remind|reminder|notify|alert)(?:\s+me)?(?:\s+(?:in|after|before|is|:))?\s*` + numberAlt + `?\s*(?:hours?|hrs?|minutes?|mins?)?\b`),
}

var (
	doublePunctRe = regexp.MustCompile(`\s*[,;]\s*[,;]\s*`)
	edgePunctRe   = regexp.MustCompile(`^[\s,;:.-]+|[\s,;:.-]+$`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// ExtractDescription returns text with the name and every metadata phrase
// removed. When nothing meaningful is left the name itself is returned.
func ExtractDescription(text, name string) string {
	desc := stripCommandPrefix(text)
	if name != "" {
		nameRe := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(name))
		desc = strings.TrimSpace(nameRe.ReplaceAllString(desc, ""))
	}
	desc = creationPrefixRe.ReplaceAllString(desc, "")

	for _, re := range descriptionMetaRes {
		desc = re.ReplaceAllString(desc, "")
	}

	for {
		next := doublePunctRe.ReplaceAllString(desc, ", ")
		if next == desc {
			break
		}
		desc = next
	}
	desc = edgePunctRe.ReplaceAllString(desc, "")
	desc = strings.TrimSpace(multiSpaceRe.ReplaceAllString(desc, " "))

	if utf8.RuneCountInString(desc) < minNameLen || strings.EqualFold(desc, name) {
		return name
	}
	return desc
}
