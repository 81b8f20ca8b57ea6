package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/admin"
	"calendar-schedule/pkg/response"
)

// Add godoc
// @Summary     Register a domain admin
// @Description Registers the admin used as the delegation subject for a Workspace domain.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body admin.CreateInput true "Admin record"
// @Success     200 {object} model.Admin
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /db/add [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req admin.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, created)
}

// Get godoc
// @Summary     Get a domain admin
// @Description Returns the registered admin for the given domain.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       domain query string true "Workspace domain, e.g. corp.com"
// @Success     200 {object} model.Admin
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /db/get [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	domain := c.Query("domain")
	if domain == "" {
		response.Error(c, errors.New("domain is required"), nil)
		return
	}

	found, err := h.uc.GetByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			response.NotFound(c, fmt.Sprintf("no admin registered for %s", domain))
			return
		}
		h.l.Errorf(ctx, "uc.GetByDomain: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, found)
}

// All godoc
// @Summary     List registered admins
// @Description Returns every registered domain admin.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Success     200 {array}  model.Admin
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /db/all [GET]
func (h *handler) All(c *gin.Context) {
	ctx := c.Request.Context()

	admins, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, admins)
}

// Update godoc
// @Summary     Update a domain admin
// @Description Replaces the registered admin record for the given domain.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       domain query string            true "Workspace domain"
// @Param       body   body  admin.CreateInput true "Replacement record"
// @Success     200 {object} model.Admin
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /db/update [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	domain := c.Query("domain")
	if domain == "" {
		response.Error(c, errors.New("domain is required"), nil)
		return
	}

	var req admin.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, domain, req)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			response.NotFound(c, fmt.Sprintf("no admin registered for %s", domain))
			return
		}
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, updated)
}

// Delete godoc
// @Summary     Remove a domain admin
// @Description Removes the registered admin for the given domain.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       domain query string true "Workspace domain"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /db/delete [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	domain := c.Query("domain")
	if domain == "" {
		response.Error(c, errors.New("domain is required"), nil)
		return
	}

	if err := h.uc.Delete(ctx, domain); err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			response.NotFound(c, fmt.Sprintf("no admin registered for %s", domain))
			return
		}
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
