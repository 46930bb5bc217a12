package dto

import "fitness_backend/internal/models"

type CreateMembershipRequest struct {
	Name         string   `json:"name" validate:"required,max=50"`
	Description  string   `json:"description"`
	PriceMonthly *float64 `json:"price_monthly" validate:"required,gte=0"`
	PriceYearly  *float64 `json:"price_yearly" validate:"required,gte=0"`
	DurationDays *int     `json:"duration_days" validate:"omitempty,gt=0"`
	Features     []string `json:"features"`
	NotIncluded  []string `json:"not_included"`
	IsPopular    bool     `json:"is_popular"`
}

type UpdateMembershipRequest struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=50"`
	Description  *string   `json:"description"`
	PriceMonthly *float64  `json:"price_monthly" validate:"omitempty,gte=0"`
	PriceYearly  *float64  `json:"price_yearly" validate:"omitempty,gte=0"`
	DurationDays *int      `json:"duration_days" validate:"omitempty,gt=0"`
	Features     *[]string `json:"features"`
	NotIncluded  *[]string `json:"not_included"`
	IsPopular    *bool     `json:"is_popular"`
	IsActive     *bool     `json:"is_active"`
}

// SubscribeRequest - пустой billing_cycle считается monthly
type SubscribeRequest struct {
	BillingCycle models.BillingCycle `json:"billing_cycle" validate:"omitempty,is-billing-cycle"`
}

type MembershipResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceMonthly float64  `json:"price_monthly"`
	PriceYearly  float64  `json:"price_yearly"`
	DurationDays int      `json:"duration_days"`
	Features     []string `json:"features"`
	NotIncluded  []string `json:"not_included"`
	IsPopular    bool     `json:"is_popular"`
	IsActive     bool     `json:"is_active"`
}

func NewMembershipResponse(m *models.Membership) MembershipResponse {
	return MembershipResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		PriceMonthly: m.PriceMonthly,
		PriceYearly:  m.PriceYearly,
		DurationDays: m.DurationDays,
		Features:     orEmpty(m.Features),
		NotIncluded:  orEmpty(m.NotIncluded),
		IsPopular:    m.IsPopular,
		IsActive:     m.IsActive,
	}
}

func NewMembershipList(items []models.Membership) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMembershipResponse(&items[i]))
	}
	return out
}

// SubscriptionResponse - результат оформления абонемента
type SubscriptionResponse struct {
	Message       string             `json:"message"`
	User          UserResponse       `json:"user"`
	Membership    MembershipResponse `json:"membership"`
	BillingCycle  string             `json:"billing_cycle"`
	MembershipEnd string             `json:"membership_end"`
}

// orEmpty - списки всегда сериализуются как [], а не null
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
