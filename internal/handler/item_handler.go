package handler

import (
	"net/http"
	"strconv"

	"items-api/internal/services"
	"items-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item CRUD endpoints.
type ItemHandler struct {
	service *services.ItemService
}

func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /items with optional name, completed, sortBy and order
// query parameters.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), services.ListFilters{
		Name:      c.Query("name"),
		Completed: c.Query("completed"),
		SortBy:    c.Query("sortBy"),
		Order:     c.Query("order"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	it, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req httpdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}

	it, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, it)
}

// Update handles PUT /items/:id with a partial body.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req httpdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, services.UpdateInput{
		Name:      req.Name,
		Completed: req.Completed,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid item id"))
		return 0, false
	}
	return id, true
}
