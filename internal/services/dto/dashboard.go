package dto

type DashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveMembers  int64 `json:"active_members"`
	TotalTrainers  int64 `json:"total_trainers"`
	TotalBookings  int64 `json:"total_bookings"`
	UnreadMessages int64 `json:"unread_messages"`
}

type DashboardResponse struct {
	Stats          DashboardStats    `json:"stats"`
	RecentBookings []BookingResponse `json:"recent_bookings"`
}

// SeedSummary - сколько записей создал init-db
type SeedSummary struct {
	Memberships   int    `json:"memberships"`
	Programs      int    `json:"programs"`
	MealPlans     int    `json:"meal_plans"`
	Trainers      int    `json:"trainers"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}
