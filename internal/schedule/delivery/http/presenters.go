package http

import (
	"calendar-schedule/internal/schedule"
	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

// --- Request DTOs ---

type ownerReq struct {
	Email string `form:"email"`
}

type groupedReq struct {
	Email    string `form:"email"`
	Timezone string `form:"timezone" binding:"required"`
}

type driveFileReq struct {
	Name     string `json:"name"     binding:"required"`
	URL      string `json:"url"      binding:"required"`
	MimeType string `json:"mime_type"`
	IconURL  string `json:"icon_url"`
}

type makeReq struct {
	Email          string        `json:"email"`
	Timezone       string        `json:"timezone"    binding:"required"`
	Slot           string        `json:"slot"        binding:"required"`
	AttendeeEmail  string        `json:"user_email"  binding:"required"`
	Title          string        `json:"event_title" binding:"required"`
	Description    string        `json:"description"`
	OtherAttendees []string      `json:"other_attendees"`
	DriveFile      *driveFileReq `json:"drive_file"`
}

func (r makeReq) toInput() schedule.BookInput {
	input := schedule.BookInput{
		Email:          r.Email,
		Timezone:       r.Timezone,
		Slot:           r.Slot,
		AttendeeEmail:  r.AttendeeEmail,
		Title:          r.Title,
		Description:    r.Description,
		OtherAttendees: r.OtherAttendees,
	}
	if r.DriveFile != nil {
		input.DriveFile = &schedule.DriveFile{
			Name:     r.DriveFile.Name,
			URL:      r.DriveFile.URL,
			MimeType: r.DriveFile.MimeType,
			IconURL:  r.DriveFile.IconURL,
		}
	}
	return input
}

// --- Response DTOs ---

type usersResp struct {
	Users []userResp `json:"users"`
}

type userResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

func (h *handler) newUsersResp(users []gworkspace.DomainUser) usersResp {
	out := usersResp{Users: make([]userResp, len(users))}
	for i, u := range users {
		out.Users[i] = userResp{Name: u.Name, Email: u.Email, Photo: u.Photo}
	}
	return out
}

type openResp struct {
	Slots []slots.Slot `json:"slots"`
}

type groupedResp struct {
	Dates []slots.DateGroup `json:"dates"`
}

type makeResp struct {
	EventLink string `json:"event_link"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Timezone  string `json:"timezone"`
}

func (h *handler) newMakeResp(out schedule.BookOutput) makeResp {
	return makeResp{
		EventLink: out.EventLink,
		Time:      out.Time,
		Date:      out.Date,
		Timezone:  out.Timezone,
	}
}
