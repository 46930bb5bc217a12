package handlers

import (
	"net/http"

	"fitness_backend/internal/middleware"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"
	"fitness_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
}

func NewMembershipHandler(base *BaseHandler, membershipService services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       base,
		membershipService: membershipService,
	}
}

func (h *MembershipHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	memberships := rg.Group("/memberships")
	{
		memberships.GET("", h.ListMemberships)
		memberships.GET("/:id", h.GetMembership)
		memberships.POST("", requireAuth, adminOnly, h.CreateMembership)
		memberships.PUT("/:id", requireAuth, adminOnly, h.UpdateMembership)
		memberships.POST("/:id/subscribe", requireAuth, h.Subscribe)
	}
}

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	list, err := h.membershipService.ListMemberships(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"memberships": list})
}

func (h *MembershipHandler) GetMembership(c *gin.Context) {
	membership, err := h.membershipService.GetMembership(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"membership": membership})
}

func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req dto.CreateMembershipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	membership, err := h.membershipService.CreateMembership(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Membership created successfully",
		"membership": membership,
	})
}

func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	var req dto.UpdateMembershipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	membership, err := h.membershipService.UpdateMembership(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Membership updated successfully",
		"membership": membership,
	})
}

func (h *MembershipHandler) Subscribe(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.membershipService.Subscribe(c.Request.Context(), h.GetDB(c), user.ID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
