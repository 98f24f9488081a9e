package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qrs}
}

// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), middleware.CallerID(c), commands.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingView(view))
}

// PATCH /bookings/:bookingId?approved=true|false
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	bookingID, err := parseUUIDParam(c, "bookingId")
	if err != nil {
		respondError(c, err)
		return
	}
	rawApproved := c.Query("approved")
	approved, err := strconv.ParseBool(rawApproved)
	if err != nil {
		respondError(c, errs.NewIncorrectParameter("approved", rawApproved))
		return
	}

	view, err := h.commands.ChangeStatus(c.Request.Context(), middleware.CallerID(c), bookingID, approved)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingView(view))
}

// GET /bookings/:bookingId
func (h *BookingHandler) GetByID(c *gin.Context) {
	bookingID, err := parseUUIDParam(c, "bookingId")
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), middleware.CallerID(c), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingView(view))
}

// GET /bookings?state=ALL&from=0&size=10
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	state := c.DefaultQuery("state", "ALL")

	views, err := h.queries.ListForBooker(c.Request.Context(), middleware.CallerID(c), state, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingViews(views))
}

// GET /bookings/owner?state=ALL&from=0&size=10
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	state := c.DefaultQuery("state", "ALL")

	views, err := h.queries.ListForOwner(c.Request.Context(), middleware.CallerID(c), state, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingViews(views))
}
