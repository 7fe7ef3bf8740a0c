package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/david-morgenstern/thundervarg/internal/model"
	"github.com/david-morgenstern/thundervarg/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary List todos
// @Tags todos
// @Produce json
// @Success 200 {array} model.Todo
// @Failure 500 {object} model.ErrorResponse
// @Router /todos/ [get]
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Fetch a todo by id
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.Todo
// @Failure 404 {object} model.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// ListByOwner godoc
// @Summary List todos owned by a user
// @Tags todos
// @Produce json
// @Param user_id path int true "Owner id"
// @Success 200 {array} model.Todo
// @Failure 500 {object} model.ErrorResponse
// @Router /user-todos/{user_id} [get]
func (h *TodoHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	todos, err := h.svc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Description created_at is server-assigned; due_date is optional.
// @Tags todos
// @Accept json
// @Produce json
// @Param request body model.CreateTodoRequest true "Todo fields"
// @Success 200 {object} model.Todo
// @Failure 400 {object} model.ErrorResponse
// @Router /todos/ [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Update godoc
// @Summary Partially update a todo
// @Description Merges only the fields present in the body.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param request body model.UpdateTodoRequest true "Fields to merge"
// @Success 200 {object} model.Todo
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.TodoDeleteResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	todo, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.TodoDeleteResponse{Deleted: todo})
}
