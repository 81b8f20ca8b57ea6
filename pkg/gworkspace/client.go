package gworkspace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service. When built from Service
// Account credentials with a subject, every call acts as that user through
// domain-wide delegation.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account
// JSON file path, impersonating subject.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, subject string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, subject)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes, impersonating subject.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, subject string) (*Client, error) {
	tokenSource, err := delegatedTokenSource(ctx, credentialsJSON, subject, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// delegatedTokenSource builds a token source for the given scopes. Service
// Account credentials get the subject set for delegation; OAuth Desktop
// credentials fall back to a previously minted token.json.
func delegatedTokenSource(ctx context.Context, credentialsJSON []byte, subject string, scopes ...string) (oauth2.TokenSource, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err == nil {
		config.Subject = subject
		return config.TokenSource(ctx), nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	return oauthConfig.TokenSource(ctx, &tok), nil
}

// FreeBusy queries the busy periods of calendarID in [timeMin, timeMax),
// expressed in UTC.
func (c *Client) FreeBusy(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]BusyPeriod, error) {
	if calendarID == "" {
		calendarID = "primary"
	}

	req := &calendar.FreeBusyRequest{
		TimeMin:              timeMin.UTC().Format(time.RFC3339),
		TimeMax:              timeMax.UTC().Format(time.RFC3339),
		TimeZone:             "UTC",
		CalendarExpansionMax: 100,
		GroupExpansionMax:    50,
		Items:                []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.service.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("freebusy response missing calendar %q", calendarID)
	}

	busy := make([]BusyPeriod, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		busy = append(busy, BusyPeriod{Start: period.Start, End: period.End})
	}
	return busy, nil
}

// CreateEvent creates a new Google Calendar event with the appointment
// attendees, reminder overrides, and an optional Drive attachment.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	attendees := []*calendar.EventAttendee{{
		Email:          req.Attendee.Email,
		Organizer:      true,
		ResponseStatus: "accepted",
		Comment:        req.Attendee.Comment,
	}}
	for _, email := range req.OtherAttendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 60},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if req.Attachment != nil {
		event.Attachments = []*calendar.EventAttachment{{
			Title:    req.Attachment.Title,
			FileUrl:  req.Attachment.FileURL,
			MimeType: req.Attachment.MimeType,
			IconLink: req.Attachment.IconURL,
		}}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).
		SupportsAttachments(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
	}
	if created.Start != nil {
		out.StartTime = created.Start.DateTime
		out.Timezone = created.Start.TimeZone
	}
	return out, nil
}
