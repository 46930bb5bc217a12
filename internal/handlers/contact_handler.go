package handlers

import (
	"net/http"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/middleware"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
	limiter        *middleware.RateLimiter
}

// NewContactHandler - limiter может быть nil (без ограничения частоты)
func NewContactHandler(base *BaseHandler, contactService services.ContactService, limiter *middleware.RateLimiter) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
		limiter:        limiter,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	contact := rg.Group("/contact")
	{
		contact.POST("", h.SubmitMessage)
		contact.GET("", requireAuth, adminOnly, h.ListMessages)
		contact.POST("/:id/read", requireAuth, adminOnly, h.MarkRead)
	}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// в лимит идут только прошедшие валидацию сообщения
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		logger.CtxWarn(c.Request.Context(), "Rate limit exceeded", "client_ip", c.ClientIP())
		h.HandleServiceError(c, apperrors.ErrTooManyMessages)
		return
	}

	if err := h.contactService.SubmitMessage(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	list, err := h.contactService.ListMessages(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": list})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactService.MarkRead(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}
