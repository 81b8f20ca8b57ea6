package gworkspace

import "time"

// BusyPeriod is one busy interval from a freebusy query, both bounds ISO-8601 UTC.
type BusyPeriod struct {
	Start string
	End   string
}

// Attendee is the primary guest of an appointment.
type Attendee struct {
	Email   string
	Comment string
}

// Attachment is an optional Drive file attached to the event.
type Attachment struct {
	Title    string
	FileURL  string
	MimeType string
	IconURL  string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID     string
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Timezone       string // e.g. "Africa/Nairobi"
	Attendee       Attendee
	OtherAttendees []string
	Attachment     *Attachment
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime string // ISO-8601 with UTC offset, as returned by the API
	Timezone  string
}

// DomainUser is a Workspace user listed through the Admin Directory API.
type DomainUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}
