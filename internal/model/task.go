package model

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Category groups tasks by life area.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryOther    Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryUrgent, CategoryOther:
		return true
	}
	return false
}

// Task is the persisted task entity owned by the calling application.
// It is only read here, when a filter is applied to a caller supplied list.
type Task struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DueDate         string   `json:"dueDate,omitempty"` // YYYY-MM-DD
	DueTime         string   `json:"dueTime,omitempty"` // HH:MM
	Duration        int      `json:"duration,omitempty"`
	Priority        Priority `json:"priority,omitempty"`
	Category        Category `json:"category,omitempty"`
	ReminderMinutes *int     `json:"reminderMinutes,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
}
