package api

import (
	"net/http"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, qrs queries.UserQueries) *UserHandler {
	return &UserHandler{commands: cmds, queries: qrs}
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	usr, err := h.commands.Create(c.Request.Context(), commands.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(usr))
}

// PATCH /users/:userId
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	usr, err := h.commands.Update(c.Request.Context(), userID, commands.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUser(usr))
}

// GET /users/:userId
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUserView(view))
}

// GET /users
func (h *UserHandler) ListAll(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUserViews(views))
}

// DELETE /users/:userId
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
