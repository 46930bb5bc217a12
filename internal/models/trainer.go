package models

import "gorm.io/datatypes"

type Trainer struct {
	BaseModel
	UserID          string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Specialization  datatypes.JSONSlice[string]
	ExperienceYears int
	Certifications  datatypes.JSONSlice[string]
	Bio             string `gorm:"type:text"`
	AvailableDays   datatypes.JSONSlice[string]
	Rating          float64 `gorm:"not null;default:5"`
	TotalReviews    int     `gorm:"not null;default:0"`
	IsActive        bool    `gorm:"not null;default:true"`

	User *User `gorm:"foreignKey:UserID"`
}
