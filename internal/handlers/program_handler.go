package handlers

import (
	"net/http"

	"fitness_backend/internal/middleware"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	*BaseHandler
	programService services.ProgramService
}

func NewProgramHandler(base *BaseHandler, programService services.ProgramService) *ProgramHandler {
	return &ProgramHandler{
		BaseHandler:    base,
		programService: programService,
	}
}

func (h *ProgramHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	programs := rg.Group("/programs")
	{
		programs.GET("", h.ListPrograms)
		programs.GET("/:id", h.GetProgram)
		programs.POST("", requireAuth, adminOnly, h.CreateProgram)
		programs.PUT("/:id", requireAuth, adminOnly, h.UpdateProgram)
	}
}

func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	list, err := h.programService.ListPrograms(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"programs": list})
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	program, err := h.programService.GetProgram(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program})
}

func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req dto.CreateProgramRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	program, err := h.programService.CreateProgram(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Program created successfully",
		"program": program,
	})
}

func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	var req dto.UpdateProgramRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Program updated successfully",
		"program": program,
	})
}
