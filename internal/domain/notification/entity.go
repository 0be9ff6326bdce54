package notification

import "time"

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	Link      *string
	IsRead    bool
	CreatedAt time.Time
}

const (
	TypeLeave     = "leave"
	TypeTimesheet = "timesheet"
	TypeReminder  = "reminder"
)
