package board

import (
	"asset_maintenance/internal/models"
)

// Style is how a status, priority or event type is rendered by clients.
type Style struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type statusStyle struct {
	status models.Status
	style  Style
}

type priorityStyle struct {
	priority models.Priority
	style    Style
}

type eventStyle struct {
	event models.EventType
	style Style
}

// Entries follow the order of the matching models.All* array.
var statusStyles = [...]statusStyle{
	{models.StatusPending, Style{Label: "Pending", Color: "amber", Icon: "clock"}},
	{models.StatusScheduled, Style{Label: "Scheduled", Color: "purple", Icon: "calendar"}},
	{models.StatusInProgress, Style{Label: "In Progress", Color: "blue", Icon: "loader"}},
	{models.StatusCompleted, Style{Label: "Completed", Color: "emerald", Icon: "check"}},
	{models.StatusCancelled, Style{Label: "Cancelled", Color: "red", Icon: "x"}},
}

var priorityStyles = [...]priorityStyle{
	{models.PriorityLow, Style{Label: "Low", Color: "slate", Icon: "info-circle"}},
	{models.PriorityMedium, Style{Label: "Medium", Color: "blue", Icon: "alert-circle"}},
	{models.PriorityHigh, Style{Label: "High", Color: "orange", Icon: "alert-triangle"}},
	{models.PriorityCritical, Style{Label: "Critical", Color: "red", Icon: "alert-triangle"}},
}

var eventStyles = [...]eventStyle{
	{models.EventStatusChange, Style{Label: "Status change", Color: "emerald", Icon: "circle-check"}},
	{models.EventComment, Style{Label: "Comment", Color: "blue", Icon: "message-circle"}},
	{models.EventAssignment, Style{Label: "Assignment", Color: "purple", Icon: "user"}},
	{models.EventCreation, Style{Label: "Creation", Color: "amber", Icon: "clipboard-list"}},
	{models.EventUpdate, Style{Label: "Update", Color: "muted", Icon: "pencil"}},
}

// One entry per enum value; a missing or extra entry fails to compile.
var (
	_ = [1]struct{}{}[len(statusStyles)-len(models.AllStatuses)]
	_ = [1]struct{}{}[len(priorityStyles)-len(models.AllPriorities)]
	_ = [1]struct{}{}[len(eventStyles)-len(models.AllEventTypes)]
)

func StatusStyle(s models.Status) Style {
	for _, e := range statusStyles {
		if e.status == s {
			return e.style
		}
	}
	return Style{Label: string(s), Color: "muted", Icon: "calendar-event"}
}

func PriorityStyle(p models.Priority) Style {
	for _, e := range priorityStyles {
		if e.priority == p {
			return e.style
		}
	}
	return Style{Label: string(p), Color: "muted", Icon: "info-circle"}
}

func EventStyle(t models.EventType) Style {
	for _, e := range eventStyles {
		if e.event == t {
			return e.style
		}
	}
	return Style{Label: string(t), Color: "muted", Icon: "calendar-event"}
}

// Legend is the full presentation table, served to clients so they never
// keep their own copy of the mapping.
type Legend struct {
	Statuses   map[models.Status]Style    `json:"statuses"`
	Priorities map[models.Priority]Style  `json:"priorities"`
	Events     map[models.EventType]Style `json:"events"`
}

func NewLegend() Legend {
	l := Legend{
		Statuses:   make(map[models.Status]Style, len(models.AllStatuses)),
		Priorities: make(map[models.Priority]Style, len(models.AllPriorities)),
		Events:     make(map[models.EventType]Style, len(models.AllEventTypes)),
	}
	for _, s := range models.AllStatuses {
		l.Statuses[s] = StatusStyle(s)
	}
	for _, p := range models.AllPriorities {
		l.Priorities[p] = PriorityStyle(p)
	}
	for _, t := range models.AllEventTypes {
		l.Events[t] = EventStyle(t)
	}
	return l
}
