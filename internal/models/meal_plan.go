package models

import "gorm.io/datatypes"

// Meal - один прием пищи внутри плана
type Meal struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
}

type MealPlan struct {
	BaseModel
	Title          string `gorm:"type:varchar(100);not null"`
	Description    string `gorm:"type:text"`
	Category       string `gorm:"type:varchar(50);index"`
	ImageURL       string `gorm:"type:varchar(255)"`
	Calories       *int
	ProteinPercent *int
	CarbsPercent   *int
	FatPercent     *int
	Meals          datatypes.JSONSlice[Meal]
	IsActive       bool `gorm:"not null;default:true"`
}
