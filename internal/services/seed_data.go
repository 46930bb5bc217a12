package services

import (
	"fitness_backend/internal/models"

	"gorm.io/datatypes"
)

const (
	seedAdminEmail      = "admin@fitnessrevolution.in"
	seedAdminPassword   = "admin123"
	seedTrainerPassword = "trainer123"
)

func seedMemberships() []models.Membership {
	return []models.Membership{
		{
			Name:         "Basic",
			Description:  "Essential access to gym facilities",
			PriceMonthly: 2499,
			PriceYearly:  24999,
			DurationDays: 30,
			Features: datatypes.NewJSONSlice([]string{
				"Access to gym equipment",
				"Locker room access",
				"Free WiFi",
				"Fitness assessment",
				"Mobile app access",
			}),
			NotIncluded: datatypes.NewJSONSlice([]string{
				"Group classes",
				"Personal training",
				"Nutrition consultation",
			}),
			IsActive: true,
		},
		{
			Name:         "Premium",
			Description:  "Full access with additional perks",
			PriceMonthly: 3999,
			PriceYearly:  39999,
			DurationDays: 30,
			Features: datatypes.NewJSONSlice([]string{
				"Access to gym equipment",
				"Locker room access",
				"Free WiFi",
				"Fitness assessment",
				"Mobile app access",
				"Unlimited group classes",
				"2 personal training sessions/month",
				"Towel service",
			}),
			NotIncluded: datatypes.NewJSONSlice([]string{
				"Nutrition consultation",
				"Guest passes",
			}),
			IsPopular: true,
			IsActive:  true,
		},
		{
			Name:         "Elite",
			Description:  "The ultimate fitness experience",
			PriceMonthly: 5999,
			PriceYearly:  59999,
			DurationDays: 30,
			Features: datatypes.NewJSONSlice([]string{
				"Access to gym equipment",
				"Locker room access",
				"Free WiFi",
				"Fitness assessment",
				"Mobile app access",
				"Unlimited group classes",
				"4 personal training sessions/month",
				"Towel service",
				"Nutrition consultation",
				"4 guest passes/month",
				"Priority class booking",
				"Recovery spa access",
			}),
			NotIncluded: datatypes.NewJSONSlice([]string{}),
			IsActive:    true,
		},
	}
}

func seedPrograms() []models.Program {
	return []models.Program{
		{
			Title:           "HIIT Training",
			Description:     "High-Intensity Interval Training that burns calories and builds endurance through explosive workouts.",
			Category:        "HIIT",
			ImageURL:        "/program-hiit.jpg",
			DurationMinutes: 45,
			CaloriesBurned:  "500-700",
			Level:           "advanced",
			MaxParticipants: defaultMaxParticipants,
			IsActive:        true,
		},
		{
			Title:           "Yoga & Meditation",
			Description:     "Find your inner peace with our expert-led yoga sessions designed for all skill levels.",
			Category:        "Yoga",
			ImageURL:        "/program-yoga.jpg",
			DurationMinutes: 60,
			CaloriesBurned:  "200-300",
			Level:           "all_levels",
			MaxParticipants: defaultMaxParticipants,
			IsActive:        true,
		},
		{
			Title:           "Strength Training",
			Description:     "Build muscle and increase power with our comprehensive strength training programs.",
			Category:        "Strength",
			ImageURL:        "/program-strength.jpg",
			DurationMinutes: 50,
			CaloriesBurned:  "400-600",
			Level:           "intermediate",
			MaxParticipants: defaultMaxParticipants,
			IsActive:        true,
		},
		{
			Title:           "Cardio Blast",
			Description:     "Improve your cardiovascular health with dynamic cardio workouts.",
			Category:        "Cardio",
			ImageURL:        "/program-cardio.jpg",
			DurationMinutes: 40,
			CaloriesBurned:  "350-500",
			Level:           "all_levels",
			MaxParticipants: defaultMaxParticipants,
			IsActive:        true,
		},
	}
}

func intPtr(v int) *int { return &v }

func seedMealPlans() []models.MealPlan {
	return []models.MealPlan{
		{
			Title:          "Weight Loss Plan",
			Description:    "A calorie-deficit meal plan designed to promote healthy weight loss with Indian cuisine options.",
			Category:       "weight_loss",
			ImageURL:       "/meal-healthy.jpg",
			Calories:       intPtr(1800),
			ProteinPercent: intPtr(40),
			CarbsPercent:   intPtr(30),
			FatPercent:     intPtr(30),
			Meals: datatypes.NewJSONSlice([]models.Meal{
				{Name: "Breakfast", Time: "8:00 AM", Description: "Vegetable oats upma with sprouts", Calories: 300},
				{Name: "Lunch", Time: "12:30 PM", Description: "Roti with paneer bhurji and cucumber raita", Calories: 450},
				{Name: "Snack", Time: "3:30 PM", Description: "Roasted chana with a small apple", Calories: 200},
				{Name: "Dinner", Time: "7:00 PM", Description: "Grilled fish with steamed brown rice", Calories: 550},
			}),
			IsActive: true,
		},
		{
			Title:          "Muscle Gain Plan",
			Description:    "A protein-rich meal plan designed to support muscle growth and recovery.",
			Category:       "muscle_gain",
			ImageURL:       "/meal-healthy.jpg",
			Calories:       intPtr(3000),
			ProteinPercent: intPtr(35),
			CarbsPercent:   intPtr(45),
			FatPercent:     intPtr(20),
			Meals: datatypes.NewJSONSlice([]models.Meal{
				{Name: "Breakfast", Time: "7:00 AM", Description: "Protein oatmeal with banana and peanut butter", Calories: 500},
				{Name: "Mid-Morning", Time: "10:00 AM", Description: "Protein shake with almonds", Calories: 350},
				{Name: "Lunch", Time: "1:00 PM", Description: "Grilled chicken with brown rice and vegetables", Calories: 700},
				{Name: "Dinner", Time: "8:00 PM", Description: "Salmon with quinoa and roasted veggies", Calories: 650},
			}),
			IsActive: true,
		},
		{
			Title:          "Vegetarian Plan",
			Description:    "A plant-based meal plan rich in nutrients and protein alternatives.",
			Category:       "vegetarian",
			ImageURL:       "/meal-healthy.jpg",
			Calories:       intPtr(2200),
			ProteinPercent: intPtr(25),
			CarbsPercent:   intPtr(50),
			FatPercent:     intPtr(25),
			Meals: datatypes.NewJSONSlice([]models.Meal{
				{Name: "Breakfast", Time: "8:00 AM", Description: "Paneer bhurji with whole grain toast", Calories: 400},
				{Name: "Lunch", Time: "12:30 PM", Description: "Dal tadka with brown rice and salad", Calories: 500},
				{Name: "Snack", Time: "3:30 PM", Description: "Hummus with carrot and cucumber sticks", Calories: 250},
				{Name: "Dinner", Time: "7:30 PM", Description: "Tofu curry with quinoa", Calories: 450},
			}),
			IsActive: true,
		},
	}
}

// seedStaff - сотрудники без пароля (хеш проставляет сервис)
type seedStaff struct {
	user    models.User
	trainer *models.Trainer
}

func seedStaffMembers() []seedStaff {
	return []seedStaff{
		{
			user: models.User{Email: "arjun@fitnessrevolution.in", FirstName: "Arjun", LastName: "Sharma", Phone: "+91 98765 43210", Role: models.UserRoleTrainer},
			trainer: &models.Trainer{
				Specialization:  datatypes.NewJSONSlice([]string{"Strength Training", "Powerlifting", "Bodybuilding"}),
				ExperienceYears: 10,
				Certifications:  datatypes.NewJSONSlice([]string{"ACE Certified", "NSCA-CPT"}),
				Bio:             "Expert strength coach with 10+ years of experience in powerlifting and bodybuilding.",
				AvailableDays:   datatypes.NewJSONSlice([]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}),
			},
		},
		{
			user: models.User{Email: "priya@fitnessrevolution.in", FirstName: "Priya", LastName: "Patel", Phone: "+91 98765 43211", Role: models.UserRoleTrainer},
			trainer: &models.Trainer{
				Specialization:  datatypes.NewJSONSlice([]string{"HIIT", "Cardio", "Weight Loss"}),
				ExperienceYears: 8,
				Certifications:  datatypes.NewJSONSlice([]string{"ACE Certified", "CrossFit L2"}),
				Bio:             "HIIT specialist helping clients achieve their weight loss goals through high-intensity workouts.",
				AvailableDays:   datatypes.NewJSONSlice([]string{"Monday", "Wednesday", "Friday", "Saturday"}),
			},
		},
		{
			user: models.User{Email: "rahul@fitnessrevolution.in", FirstName: "Rahul", LastName: "Kumar", Phone: "+91 98765 43212", Role: models.UserRoleTrainer},
			trainer: &models.Trainer{
				Specialization:  datatypes.NewJSONSlice([]string{"Yoga", "Meditation", "Mindfulness"}),
				ExperienceYears: 15,
				Certifications:  datatypes.NewJSONSlice([]string{"RYT-500", "Yoga Alliance"}),
				Bio:             "Yoga master with 15 years of practice in Hatha and Vinyasa yoga.",
				AvailableDays:   datatypes.NewJSONSlice([]string{"Tuesday", "Thursday", "Saturday", "Sunday"}),
			},
		},
		{
			user: models.User{Email: "ananya@fitnessrevolution.in", FirstName: "Ananya", LastName: "Reddy", Phone: "+91 98765 43213", Role: models.UserRoleNutritionist},
		},
	}
}
