package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - UUID генерируется в приложении, чтобы одинаково работать
// на postgres, mysql и sqlite
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// AllModels - порядок важен для внешних ключей при AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&Membership{},
		&User{},
		&Trainer{},
		&Program{},
		&Class{},
		&Booking{},
		&MealPlan{},
		&ProgressLog{},
		&ContactMessage{},
	}
}
