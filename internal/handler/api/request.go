package api

import (
	"net/http"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, qrs queries.RequestQueries) *RequestHandler {
	return &RequestHandler{commands: cmds, queries: qrs}
}

// POST /requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req request.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), middleware.CallerID(c), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

// GET /requests
func (h *RequestHandler) ListOwn(c *gin.Context) {
	views, err := h.queries.ListOwn(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRequestViews(views))
}

// GET /requests/all?from=0&size=10
func (h *RequestHandler) ListOthers(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.queries.ListOthers(c.Request.Context(), middleware.CallerID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRequestViews(views))
}

// GET /requests/:requestId
func (h *RequestHandler) GetByID(c *gin.Context) {
	requestID, err := parseUUIDParam(c, "requestId")
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), middleware.CallerID(c), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRequestView(view))
}
