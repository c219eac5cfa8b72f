package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todoloop/backend/logger"
	"github.com/todoloop/backend/models"
	"github.com/todoloop/backend/store"
	"go.uber.org/zap"
)

// TodoHandler serves the owner-scoped todo CRUD endpoints. Every
// operation filters by the authenticated caller's id.
type TodoHandler struct {
	todos *store.TodoStore
}

func NewTodoHandler(todos *store.TodoStore) *TodoHandler {
	return &TodoHandler{todos: todos}
}

type TodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Done        bool   `json:"done"`
}

// List handles GET /todos
func (h *TodoHandler) List(c *gin.Context) {
	identity := CurrentIdentity(c)

	todos, err := h.todos.ListByOwner(c.Request.Context(), identity.ID)
	if err != nil {
		logger.Error("failed to list todos", zap.Error(err), zap.Uint("owner", identity.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Create handles POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	identity := CurrentIdentity(c)

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	todo := models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
		Owner:       identity.ID,
	}

	if err := h.todos.Create(c.Request.Context(), &todo); err != nil {
		logger.Error("failed to create todo", zap.Error(err), zap.Uint("owner", identity.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "id": todo.ID})
}

// Update handles PUT /todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	identity := CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid todo id"})
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	if err := h.todos.Update(c.Request.Context(), identity.ID, uint(id), req.Title, req.Description, req.Done); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Todo not found or not owned by you"})
			return
		}
		logger.Error("failed to update todo", zap.Error(err), zap.Uint("owner", identity.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Delete handles DELETE /todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	identity := CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid todo id"})
		return
	}

	if err := h.todos.Delete(c.Request.Context(), identity.ID, uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Todo not found or not owned by you"})
			return
		}
		logger.Error("failed to delete todo", zap.Error(err), zap.Uint("owner", identity.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
