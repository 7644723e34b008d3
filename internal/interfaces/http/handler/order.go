package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/trade"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	service *tradeapp.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id/flags", h.UpdateFlag)
		orders.POST("/:id/apply-credit", h.ApplyCredit)
	}
}

// UpdateFlagRequest sets or clears a single status flag on an order
type UpdateFlagRequest struct {
	Flag  string `json:"flag" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List handles GET /orders with optional client and flag filters.
// Repeating the flag parameter narrows the result to orders with all of
// the given flags active.
func (h *OrderHandler) List(c *gin.Context) {
	flags := make([]trade.StatusFlag, 0)
	for _, flag := range c.QueryArray("flag") {
		flags = append(flags, trade.StatusFlag(flag))
	}

	filter := trade.OrderFilter{
		ClientName: c.Query("client"),
		Flags:      flags,
	}

	orders, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateFlag handles PUT /orders/:id/flags
func (h *OrderHandler) UpdateFlag(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.UpdateFlag(c.Request.Context(), id, req.Flag, *req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ApplyCredit handles POST /orders/:id/apply-credit
func (h *OrderHandler) ApplyCredit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.ApplyCredit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

func (h *OrderHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}
