package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/smedge/backend/internal/application/partner"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	BaseHandler
	service *partnerapp.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Register)
		clients.GET("", h.List)
		clients.GET("/:id", h.GetByID)
		clients.GET("/:id/credit", h.AvailableCredit)
		clients.POST("/:id/payments", h.AddPayment)
		clients.POST("/:id/expenses", h.AddExpense)
	}
}

// Register handles POST /clients
func (h *ClientHandler) Register(c *gin.Context) {
	var req partnerapp.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, clients)
}

// GetByID handles GET /clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	client, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// AvailableCredit handles GET /clients/:id/credit
func (h *ClientHandler) AvailableCredit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	credit, err := h.service.AvailableCredit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"available_credit_minor": credit.Minor(),
		"currency":               credit.Currency(),
	})
}

// AddPayment handles POST /clients/:id/payments
func (h *ClientHandler) AddPayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req partnerapp.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tx, err := h.service.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tx)
}

// AddExpense handles POST /clients/:id/expenses
func (h *ClientHandler) AddExpense(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req partnerapp.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tx, err := h.service.AddExpense(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tx)
}

func (h *ClientHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid client id")
		return uuid.Nil, false
	}
	return id, true
}
