package gworkspace

import (
	"context"
	"fmt"
	"net/http"
	"os"

	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// Directory wraps the Admin SDK Directory API, impersonating a domain super
// admin to enumerate Workspace users.
type Directory struct {
	service *admin.Service
}

// NewDirectoryFromCredentialsFile creates a Directory client from a Service
// Account JSON file path, impersonating the admin subject.
func NewDirectoryFromCredentialsFile(ctx context.Context, credentialsPath, subject string) (*Directory, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewDirectoryFromCredentialsJSON(ctx, data, subject)
}

// NewDirectoryFromCredentialsJSON creates a Directory client from raw Service
// Account JSON bytes, impersonating the admin subject.
func NewDirectoryFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, subject string) (*Directory, error) {
	tokenSource, err := delegatedTokenSource(ctx, credentialsJSON, subject, admin.AdminDirectoryUserReadonlyScope)
	if err != nil {
		return nil, err
	}
	svc, err := admin.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}
	return &Directory{service: svc}, nil
}

// NewDirectoryFromHTTP creates a Directory client from a pre-configured HTTP client.
func NewDirectoryFromHTTP(ctx context.Context, httpClient *http.Client) (*Directory, error) {
	svc, err := admin.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}
	return &Directory{service: svc}, nil
}

// ListUsers returns every user of the impersonated admin's customer account,
// ordered by email.
func (d *Directory) ListUsers(ctx context.Context) ([]DomainUser, error) {
	resp, err := d.service.Users.List().
		Customer("my_customer").
		OrderBy("email").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list domain users: %w", err)
	}

	users := make([]DomainUser, 0, len(resp.Users))
	for _, u := range resp.Users {
		user := DomainUser{Email: u.PrimaryEmail, Photo: u.ThumbnailPhotoUrl}
		if u.Name != nil {
			user.Name = u.Name.FullName
		}
		users = append(users, user)
	}
	return users, nil
}
