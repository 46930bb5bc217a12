package models

import "gorm.io/datatypes"

type Membership struct {
	BaseModel
	Name         string                      `gorm:"type:varchar(50);not null"`
	Description  string                      `gorm:"type:text"`
	PriceMonthly float64                     `gorm:"not null"`
	PriceYearly  float64                     `gorm:"not null"`
	DurationDays int                         `gorm:"not null;default:30"`
	Features     datatypes.JSONSlice[string] // что входит
	NotIncluded  datatypes.JSONSlice[string] // что не входит
	IsPopular    bool                        `gorm:"not null;default:false"`
	IsActive     bool                        `gorm:"not null;default:true"`
}
