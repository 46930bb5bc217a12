package handlers

import (
	"net/http"

	"fitness_backend/internal/database"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type SystemHandler struct {
	*BaseHandler
	seedService services.SeedService
}

func NewSystemHandler(base *BaseHandler, seedService services.SeedService) *SystemHandler {
	return &SystemHandler{
		BaseHandler: base,
		seedService: seedService,
	}
}

// RegisterRoutes: "/" вешается на корень, остальное - на группу /api
func (h *SystemHandler) RegisterRoutes(root *gin.Engine, api *gin.RouterGroup) {
	root.GET("/", h.Index)

	api.GET("/docs", h.Docs)
	api.GET("/health", h.Health)
	api.POST("/init-db", h.InitDB)
}

func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Welcome to The Fitness Revolution API",
		"version":       apiVersion,
		"status":        "running",
		"documentation": "/api/docs",
		"endpoints": gin.H{
			"authentication": "/api/auth/*",
			"users":          "/api/users",
			"memberships":    "/api/memberships",
			"trainers":       "/api/trainers",
			"programs":       "/api/programs",
			"classes":        "/api/classes",
			"bookings":       "/api/bookings",
			"meal_plans":     "/api/meal-plans",
			"progress":       "/api/progress",
			"contact":        "/api/contact",
		},
	})
}

func (h *SystemHandler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       "The Fitness Revolution API Documentation",
		"version":     apiVersion,
		"description": "Complete REST API for gym and fitness management",
		"base_url":    "/api",
		"endpoints": gin.H{
			"authentication": gin.H{
				"POST /api/auth/register":        "Register a new user",
				"POST /api/auth/login":           "Login and receive a bearer token",
				"GET /api/auth/me":               "Current user (auth)",
				"POST /api/auth/change-password": "Change password (auth)",
			},
			"users": gin.H{
				"GET /api/users":        "List users (admin)",
				"GET /api/users/:id":    "Get user (self or admin)",
				"PUT /api/users/:id":    "Update user (self or admin)",
				"DELETE /api/users/:id": "Deactivate user (admin)",
			},
			"memberships": gin.H{
				"GET /api/memberships":                "List active membership plans",
				"GET /api/memberships/:id":            "Get membership plan",
				"POST /api/memberships":               "Create membership plan (admin)",
				"PUT /api/memberships/:id":            "Update membership plan (admin)",
				"POST /api/memberships/:id/subscribe": "Subscribe to a plan (auth)",
			},
			"trainers": gin.H{
				"GET /api/trainers":     "List active trainers",
				"GET /api/trainers/:id": "Get trainer",
				"POST /api/trainers":    "Create trainer profile (admin)",
			},
			"programs": gin.H{
				"GET /api/programs":     "List active programs",
				"GET /api/programs/:id": "Get program",
				"POST /api/programs":    "Create program (admin)",
				"PUT /api/programs/:id": "Update program (admin)",
			},
			"classes": gin.H{
				"GET /api/classes":     "List upcoming classes (?date=&trainer_id=&program_id=)",
				"GET /api/classes/:id": "Get class",
				"POST /api/classes":    "Schedule class (admin or trainer)",
			},
			"bookings": gin.H{
				"GET /api/bookings":             "List my bookings (auth)",
				"POST /api/bookings":            "Book a class (auth)",
				"POST /api/bookings/:id/cancel": "Cancel booking (owner)",
			},
			"meal_plans": gin.H{
				"GET /api/meal-plans":     "List meal plans (?category=)",
				"GET /api/meal-plans/:id": "Get meal plan",
				"POST /api/meal-plans":    "Create meal plan (admin or nutritionist)",
			},
			"progress": gin.H{
				"GET /api/progress":  "List my progress logs (auth)",
				"POST /api/progress": "Create progress log (auth)",
			},
			"contact": gin.H{
				"POST /api/contact":          "Send a message",
				"GET /api/contact":           "List messages (admin)",
				"POST /api/contact/:id/read": "Mark message as read (admin)",
			},
			"admin": gin.H{
				"GET /api/admin/dashboard": "Dashboard statistics (admin)",
			},
			"system": gin.H{
				"GET /api/health":   "Health check",
				"POST /api/init-db": "Create schema and seed sample data",
			},
		},
	})
}

func (h *SystemHandler) Health(c *gin.Context) {
	if err := database.Ping(h.GetDB(c)); err != nil {
		logger.CtxWithError(c.Request.Context(), "Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}

func (h *SystemHandler) InitDB(c *gin.Context) {
	summary, seeded, err := h.seedService.InitDB(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Database already initialized"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Database initialized successfully with sample data",
		"data":    summary,
	})
}
