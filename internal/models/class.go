package models

import "gorm.io/datatypes"

// Class - конкретное занятие по программе у тренера.
// Инвариант: 0 <= EnrolledCount <= MaxParticipants.
type Class struct {
	BaseModel
	ProgramID       string         `gorm:"type:varchar(36);not null;index"`
	TrainerID       string         `gorm:"type:varchar(36);not null;index"`
	Date            datatypes.Date `gorm:"not null;index"`
	StartTime       datatypes.Time `gorm:"not null"`
	EndTime         datatypes.Time `gorm:"not null"`
	Location        string         `gorm:"type:varchar(100)"`
	IsVirtual       bool           `gorm:"not null;default:false"`
	MeetingLink     string         `gorm:"type:varchar(255)"`
	MaxParticipants int            `gorm:"not null;default:20"`
	EnrolledCount   int            `gorm:"not null;default:0"`
	IsActive        bool           `gorm:"not null;default:true"`

	Program *Program `gorm:"foreignKey:ProgramID"`
	Trainer *Trainer `gorm:"foreignKey:TrainerID"`
}

// AvailableSpots - сколько мест осталось
func (c *Class) AvailableSpots() int {
	return c.MaxParticipants - c.EnrolledCount
}

// IsFull - мест нет
func (c *Class) IsFull() bool {
	return c.EnrolledCount >= c.MaxParticipants
}
