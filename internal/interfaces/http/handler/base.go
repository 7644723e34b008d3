package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common functionality for all handlers
type BaseHandler struct{}

// Success sends a successful response with data
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a successful creation response
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a successful response without content
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate HTTP status
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	status := dto.GetHTTPStatus(code)
	requestID := getRequestID(c)
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 error response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 error response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeInternal, message)
}

// HandleError maps domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, code, domainErr.Message)
		return
	}
	h.InternalError(c, err.Error())
}

// getRequestID extracts the request ID from the gin context
func getRequestID(c *gin.Context) string {
	if requestID := c.GetString("request_id"); requestID != "" {
		return requestID
	}
	return c.GetHeader("X-Request-ID")
}
