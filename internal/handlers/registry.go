package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	MembershipHandler *MembershipHandler
	TrainerHandler    *TrainerHandler
	ProgramHandler    *ProgramHandler
	ClassHandler      *ClassHandler
	BookingHandler    *BookingHandler
	MealPlanHandler   *MealPlanHandler
	ProgressHandler   *ProgressHandler
	ContactHandler    *ContactHandler
	AdminHandler      *AdminHandler
	SystemHandler     *SystemHandler
}
