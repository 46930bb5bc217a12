package services

import (
	"fitness_backend/internal/auth"
	"fitness_backend/internal/email"
	"fitness_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       AuthService
	UserService       UserService
	MembershipService MembershipService
	TrainerService    TrainerService
	ProgramService    ProgramService
	ClassService      ClassService
	BookingService    BookingService
	MealPlanService   MealPlanService
	ProgressService   ProgressService
	ContactService    ContactService
	DashboardService  DashboardService
	SeedService       SeedService
	Mailer            email.Provider
}

// NewServiceContainer собирает репозитории и сервисы.
// adminEmail - куда уходят уведомления о новых сообщениях (пусто = не отправлять).
func NewServiceContainer(tokens *auth.TokenManager, mailer email.Provider, adminEmail string) *ServiceContainer {
	// --- Репозитории ---
	userRepo := repositories.NewUserRepository()
	membershipRepo := repositories.NewMembershipRepository()
	trainerRepo := repositories.NewTrainerRepository()
	programRepo := repositories.NewProgramRepository()
	classRepo := repositories.NewClassRepository()
	bookingRepo := repositories.NewBookingRepository()
	mealPlanRepo := repositories.NewMealPlanRepository()
	progressRepo := repositories.NewProgressRepository()
	contactRepo := repositories.NewContactRepository()

	// --- Сервисы ---
	return &ServiceContainer{
		AuthService:       NewAuthService(userRepo, tokens),
		UserService:       NewUserService(userRepo, membershipRepo),
		MembershipService: NewMembershipService(membershipRepo, userRepo),
		TrainerService:    NewTrainerService(trainerRepo, userRepo),
		ProgramService:    NewProgramService(programRepo),
		ClassService:      NewClassService(classRepo, programRepo, trainerRepo),
		BookingService:    NewBookingService(bookingRepo, classRepo),
		MealPlanService:   NewMealPlanService(mealPlanRepo),
		ProgressService:   NewProgressService(progressRepo),
		ContactService:    NewContactService(contactRepo, mailer, adminEmail),
		DashboardService:  NewDashboardService(userRepo, trainerRepo, bookingRepo, contactRepo),
		SeedService:       NewSeedService(userRepo, membershipRepo, programRepo, mealPlanRepo, trainerRepo),
		Mailer:            mailer,
	}
}
