package handlers

import (
	"net/http"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/middleware"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	*BaseHandler
	classService services.ClassService
}

func NewClassHandler(base *BaseHandler, classService services.ClassService) *ClassHandler {
	return &ClassHandler{
		BaseHandler:  base,
		classService: classService,
	}
}

func (h *ClassHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	classes := rg.Group("/classes")
	{
		classes.GET("", h.ListClasses)
		classes.GET("/:id", h.GetClass)
		classes.POST("", requireAuth, middleware.RequireRoles(auth.TrainerOrAdmin...), h.CreateClass)
	}
}

func (h *ClassHandler) ListClasses(c *gin.Context) {
	var query dto.ClassQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.classService.ListClasses(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"classes": list})
}

func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.GetClass(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class})
}

func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	class, err := h.classService.CreateClass(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Class scheduled successfully",
		"class":   class,
	})
}
