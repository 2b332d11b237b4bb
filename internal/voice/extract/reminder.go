package extract

import "regexp"

var noReminderRe = regexp.MustCompile(`(?i)\b(?:no reminder|don['’]t remind|dont remind|do not remind|no need to remind)\b`)

var reminderRules = []amountRule{
	{name: "reminder", regex: regexp.MustCompile(`(?i)\breminder\s*(?:is|:|,)?\s*([a-z0-9]+)\s*` + unitAlt + `\b`)},
	{name: "remind", regex: regexp.MustCompile(`(?i)\bremind(?: me)?(?: in| after| before|:)?\s*([a-z0-9]+)\s*` + unitAlt + `\b`)},
	{name: "alert", regex: regexp.MustCompile(`(?i)\b(?:alert|notify)(?: me)?(?: in| after| before)?\s*([a-z0-9]+)\s*` + unitAlt + `\b`)},
}

// ExtractReminder returns the reminder offset in minutes. A negation such as
// "no reminder" yields 0; nil means the text did not mention a reminder.
func ExtractReminder(text string) *int {
	if noReminderRe.MatchString(text) {
		zero := 0
		return &zero
	}
	if minutes, ok := firstAmount(reminderRules, text); ok {
		return &minutes
	}
	return nil
}
