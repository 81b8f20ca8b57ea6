package http

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}

// processOwnerReq binds the optional email query parameter.
func (h *handler) processOwnerReq(c *gin.Context) (ownerReq, error) {
	var req ownerReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, validateEmail(req.Email)
}

// processGroupedReq binds the email and timezone query parameters.
func (h *handler) processGroupedReq(c *gin.Context) (groupedReq, error) {
	var req groupedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, validateEmail(req.Email)
}

// processMakeReq binds and validates the booking request body.
func (h *handler) processMakeReq(c *gin.Context) (makeReq, error) {
	var req makeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := validateEmail(req.Email); err != nil {
		return req, err
	}
	return req, validateEmail(req.AttendeeEmail)
}
