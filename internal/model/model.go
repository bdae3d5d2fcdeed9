package model

import "time"

type User struct {
	ID           string
	Username     string
	Email        *string
	PasswordHash string
	Role         Role
	Color        string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// DefaultColor is assigned when a user is created without one.
const DefaultColor = "#3498db"

type Appointment struct {
	ID            string
	UserID        string
	Date          time.Time
	TimeSlot      TimeSlot
	DoorType      DoorType
	Comment       string
	InvoiceNumber string
	Address       string
	IsWeekend     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Owner is the denormalized user snapshot attached to calendar slots.
type Owner struct {
	ID       string
	Username string
	Role     Role
	Color    string
}

// AppointmentWithOwner is the read-time join used by the calendar view.
type AppointmentWithOwner struct {
	Appointment
	Owner Owner
}

type Notification struct {
	ID            string
	UserID        string
	AppointmentID string
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}

// DateFormat is the only accepted calendar-date form.
const DateFormat = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}
