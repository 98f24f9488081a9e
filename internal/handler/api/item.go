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

type ItemHandler struct {
	commands commands.ItemCommands
	comments commands.CommentCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, qrs queries.ItemQueries) *ItemHandler {
	return &ItemHandler{commands: cmds, comments: comments, queries: qrs}
}

// POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	itm, err := h.commands.Create(c.Request.Context(), middleware.CallerID(c), commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(itm))
}

// PATCH /items/:itemId
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	itm, err := h.commands.Update(c.Request.Context(), middleware.CallerID(c), itemID, commands.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromItem(itm))
}

// GET /items/:itemId
func (h *ItemHandler) GetByID(c *gin.Context) {
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), middleware.CallerID(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromItemView(view))
}

// GET /items?from=0&size=10
func (h *ItemHandler) ListForOwner(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), middleware.CallerID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromItemViews(views))
}

// GET /items/search?text=...&from=0&size=10
func (h *ItemHandler) Search(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.queries.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromItemViews(views))
}

// POST /items/:itemId/comment
func (h *ItemHandler) AddComment(c *gin.Context) {
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	view, err := h.comments.Add(c.Request.Context(), middleware.CallerID(c), itemID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCommentView(view))
}
