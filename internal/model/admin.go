package model

// Admin is a Workspace super admin registered for one domain. The admin's
// email is the delegation subject used when listing that domain's users.
type Admin struct {
	ID     int64  `json:"id"`
	Domain string `json:"domain"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
