package routes

import (
	"net/http"

	"fitness_backend/internal/handlers"
	"fitness_backend/internal/logger"
	"fitness_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// requireAuth - AuthMiddleware, собранный с AuthService.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	requireAuth gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.SystemHandler.RegisterRoutes(ginRouter, api)
		appHandlers.AuthHandler.RegisterRoutes(api, requireAuth)
		appHandlers.UserHandler.RegisterRoutes(api, requireAuth)
		appHandlers.MembershipHandler.RegisterRoutes(api, requireAuth)
		appHandlers.TrainerHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ProgramHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ClassHandler.RegisterRoutes(api, requireAuth)
		appHandlers.BookingHandler.RegisterRoutes(api, requireAuth)
		appHandlers.MealPlanHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ProgressHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ContactHandler.RegisterRoutes(api, requireAuth)
		appHandlers.AdminHandler.RegisterRoutes(api, requireAuth)
	}

	ginRouter.HandleMethodNotAllowed = true
	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.ErrRouteNotFound)
	})
	ginRouter.NoMethod(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeMethodNotAllowed, "http", "Method not allowed", http.StatusMethodNotAllowed))
	})

	logger.Info("HTTP routes registered", "count", len(ginRouter.Routes()))
}
