package models

// Program - шаблон занятия (HIIT, йога и т.д.)
type Program struct {
	BaseModel
	Title           string `gorm:"type:varchar(100);not null"`
	Description     string `gorm:"type:text"`
	Category        string `gorm:"type:varchar(50);index"`
	ImageURL        string `gorm:"type:varchar(255)"`
	DurationMinutes int
	CaloriesBurned  string `gorm:"type:varchar(20)"` // диапазон, например "500-700"
	Level           string `gorm:"type:varchar(20)"`
	MaxParticipants int    `gorm:"not null;default:20"`
	IsActive        bool   `gorm:"not null;default:true"`
}
