package models

import (
	"strings"
	"time"
)

// Status is the progress state of a todo as the API reports it.
type Status string

const (
	StatusNotStarted Status = "not started"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	UserID      int    `json:"user_id"`
	// DueTime is kept as the raw server value, see FormatSQLDate.
	DueTime string `json:"due_time"`
}

// TodoInput is the body of POST /todos and PUT /todos/:id.
type TodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	UserID      int    `json:"user_id"`
	DueTime     string `json:"due_time"`
}

// User represent the authenticated person
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	CreatedAt string `json:"created_at"`
}

// UserInput is the body of PUT /users/:id.
type UserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses the timestamp formats the API is known to emit.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatSQLDate normalizes a due time to the date-only form the API expects
// on update. Values it cannot parse are returned trimmed and otherwise untouched.
func FormatSQLDate(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return t.Format(time.DateOnly)
}
