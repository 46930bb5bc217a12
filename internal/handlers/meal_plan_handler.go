package handlers

import (
	"net/http"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/middleware"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MealPlanHandler struct {
	*BaseHandler
	mealPlanService services.MealPlanService
}

func NewMealPlanHandler(base *BaseHandler, mealPlanService services.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{
		BaseHandler:     base,
		mealPlanService: mealPlanService,
	}
}

func (h *MealPlanHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	plans := rg.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.GET("/:id", h.GetMealPlan)
		plans.POST("", requireAuth, middleware.RequireRoles(auth.NutritionistOrAdmin...), h.CreateMealPlan)
	}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	list, err := h.mealPlanService.ListMealPlans(c.Request.Context(), h.GetDB(c), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": list})
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	plan, err := h.mealPlanService.GetMealPlan(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	var req dto.CreateMealPlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Meal plan created successfully",
		"meal_plan": plan,
	})
}
