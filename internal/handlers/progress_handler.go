package handlers

import (
	"net/http"

	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	*BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(base *BaseHandler, progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     base,
		progressService: progressService,
	}
}

func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	progress := rg.Group("/progress")
	progress.Use(requireAuth)
	{
		progress.GET("", h.ListProgress)
		progress.POST("", h.CreateProgress)
	}
}

func (h *ProgressHandler) ListProgress(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	logs, err := h.progressService.ListProgress(c.Request.Context(), h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress_logs": logs})
}

func (h *ProgressHandler) CreateProgress(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateProgressRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	log, err := h.progressService.CreateProgress(c.Request.Context(), h.GetDB(c), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Progress log created successfully",
		"progress_log": log,
	})
}
