package remote

import (
	"fmt"
	"time"
)

// PromptSystem frames the model as a strict extractor.
const PromptSystem = `You convert spoken task requests into JSON. Reply with exactly one JSON object and nothing else.`

const promptTask = `%s

Extract task information from this voice input: "%s"

Rules:
- Extract task name, description, date, time, duration, priority, category, and reminder
- For relative times like "in 15 minutes", "at 5pm", "tomorrow", calculate actual date/time
- For durations like "15 minutes", "1 hour", convert to minutes
- If priority words like "urgent", "important" are mentioned, set priority to high
- If no specific info is mentioned, leave fields empty
- Return dates in YYYY-MM-DD format
- Return times in HH:MM 24-hour format
- Use the keys name, description, dueDate, dueTime, duration, priority, category, reminderMinutes
- priority is one of low, medium, high; category is one of work, personal, urgent, other`

// contextLine renders the reference instant the model should resolve
// relative phrases against, e.g.
// "Today is Monday, January 15, 2024. Current time is 14:30."
func contextLine(now time.Time) string {
	return fmt.Sprintf("Today is %s. Current time is %s.",
		now.Format("Monday, January 2, 2006"), now.Format("15:04"))
}

// BuildTaskPrompt returns the user message sent for transcript.
func BuildTaskPrompt(transcript string, now time.Time) string {
	return fmt.Sprintf(promptTask, contextLine(now), transcript)
}
