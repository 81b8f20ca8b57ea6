package admin

// CreateInput carries the writable fields of an admin record.
type CreateInput struct {
	Domain string `json:"domain" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"required"`
}
