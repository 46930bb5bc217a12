package handlers

import (
	"net/http"

	"fitness_backend/internal/middleware"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService services.TrainerService
}

func NewTrainerHandler(base *BaseHandler, trainerService services.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:    base,
		trainerService: trainerService,
	}
}

func (h *TrainerHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	trainers := rg.Group("/trainers")
	{
		trainers.GET("", h.ListTrainers)
		trainers.GET("/:id", h.GetTrainer)
		trainers.POST("", requireAuth, middleware.RequireRoles(models.UserRoleAdmin), h.CreateTrainer)
	}
}

func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	list, err := h.trainerService.ListTrainers(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainers": list})
}

func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trainer created successfully",
		"trainer": trainer,
	})
}
