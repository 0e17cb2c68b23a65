package todoist

// Project represents a Todoist project. IsInboxProject marks the catch-all
// inbox that every account has exactly one of.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IsInboxProject bool   `json:"is_inbox_project"`
}

// Due is a task's scheduling annotation. Date is always set ("2006-01-02");
// Datetime is set only for tasks due at a specific time of day and is a
// local timestamp without zone ("2006-01-02T15:04:05").
type Due struct {
	Date        string `json:"date"`
	Datetime    string `json:"datetime,omitempty"`
	String      string `json:"string,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// HasTime reports whether the due descriptor carries a time of day.
// It is safe to call on a nil receiver (no due descriptor at all).
func (d *Due) HasTime() bool {
	return d != nil && d.Datetime != ""
}

// Task represents a Todoist task as returned by the REST API. Tasks are
// read-only from this bot's perspective and are refetched every cycle.
type Task struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	Content    string `json:"content"`
	CreatorID  string `json:"creator_id"`
	AssigneeID string `json:"assignee_id,omitempty"`
	Due        *Due   `json:"due,omitempty"`
}
