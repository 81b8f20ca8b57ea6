package schedule

// DriveFile is an optional Drive attachment for the appointment.
type DriveFile struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	IconURL  string `json:"icon_url"`
}

// BookInput is the input for booking one open slot. Slot is the label the
// user picked, a DateGroup date and time joined by "T",
// e.g. "Mon Jun  5T09:00 AM".
type BookInput struct {
	Email          string     // calendar owner; empty falls back to the configured default
	Timezone       string     // IANA zone the label was rendered in
	Slot           string
	AttendeeEmail  string
	Title          string
	Description    string
	OtherAttendees []string
	DriveFile      *DriveFile
}

// BookOutput confirms the created appointment in the booking timezone.
type BookOutput struct {
	EventLink string `json:"event_link"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Timezone  string `json:"timezone"`
}
