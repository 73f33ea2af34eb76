package events

import (
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the audit trail.
const (
	ActionStart        string = "start"
	ActionSetLanguage  string = "set_language"
	ActionSelectRoute  string = "select_route"
	ActionWhereToFind  string = "where_to_find"
	ActionLookup       string = "lookup"
	ActionShareContact string = "share_contact"
	ActionBroadcast    string = "broadcast"
)

// Event is one user action.
type Event struct {
	ID      string
	Action  string
	UserID  *int64
	Details string
	Time    time.Time
}

// NewUserEvent builds an event performed by the user with the given id.
func NewUserEvent(action string, userID int64, details string) Event {
	return Event{
		ID:      uuid.NewString(),
		Action:  action,
		UserID:  &userID,
		Details: details,
		Time:    time.Now(),
	}
}

// NewSystemEvent builds an event that no user performed, like a broadcast started from the CLI.
func NewSystemEvent(action string, details string) Event {
	return Event{
		ID:      uuid.NewString(),
		Action:  action,
		Details: details,
		Time:    time.Now(),
	}
}
