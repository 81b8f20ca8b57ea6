package http

import (
	"github.com/gin-gonic/gin"

	"calendar-schedule/pkg/response"
)

// Users godoc
// @Summary     List domain users
// @Description Returns the Workspace users of the calendar owner's domain.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       email query string false "Calendar owner email (defaults to the configured owner)"
// @Success     200 {object} usersResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No admin registered for the domain"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendar/users [GET]
func (h *handler) Users(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOwnerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	users, err := h.uc.DomainUsers(ctx, req.Email)
	if err != nil {
		h.l.Errorf(ctx, "uc.DomainUsers: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUsersResp(users))
}

// Open godoc
// @Summary     List open slots
// @Description Returns the owner's free appointment slots over the lookahead window, as UTC instants.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       email query string false "Calendar owner email (defaults to the configured owner)"
// @Success     200 {object} openResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendar/open [GET]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOwnerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	open, err := h.uc.OpenSlots(ctx, req.Email)
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenSlots: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, openResp{Slots: open})
}

// Grouped godoc
// @Summary     List open slots grouped by date
// @Description Returns the owner's free slots bucketed per calendar date in the requester's timezone, with display labels.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       email    query string false "Calendar owner email (defaults to the configured owner)"
// @Param       timezone query string true  "IANA timezone, e.g. Africa/Nairobi"
// @Success     200 {object} groupedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendar/grouped [GET]
func (h *handler) Grouped(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	groups, err := h.uc.GroupedSlots(ctx, req.Email, req.Timezone)
	if err != nil {
		h.l.Errorf(ctx, "uc.GroupedSlots: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, groupedResp{Dates: groups})
}

// Make godoc
// @Summary     Book an appointment
// @Description Books the chosen slot on the owner's calendar and returns the confirmation details.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body makeReq true "Booking request"
// @Success     200 {object} makeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendar/make [POST]
func (h *handler) Make(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMakeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Book(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Book: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newMakeResp(out))
}
