package handlers

import (
	"net/http"

	"fitness_backend/internal/middleware"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewAdminHandler(base *BaseHandler, dashboardService services.DashboardService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(requireAuth, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.GetDashboard)
	}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboardService.GetDashboard(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
