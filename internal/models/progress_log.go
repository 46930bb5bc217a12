package models

import "gorm.io/datatypes"

type ProgressLog struct {
	BaseModel
	UserID            string `gorm:"type:varchar(36);not null;index"`
	Weight            *float64
	Height            *float64
	BodyFatPercent    *float64
	MuscleMass        *float64
	BMI               *float64 `gorm:"column:bmi"`
	WorkoutsCompleted *int
	CaloriesBurned    *int
	Notes             string         `gorm:"type:text"`
	LogDate           datatypes.Date `gorm:"not null;index"`
}
