package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(50);not null"`
	LastName     string `gorm:"type:varchar(50);not null"`
	Phone        string `gorm:"type:varchar(20)"`
	DateOfBirth  *datatypes.Date
	Gender       string   `gorm:"type:varchar(10)"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'member'"`
	ProfileImage string   `gorm:"type:varchar(255)"`

	// Фитнес-профиль
	Height        *float64 // см
	Weight        *float64 // кг
	FitnessGoal   string   `gorm:"type:varchar(50)"`
	ActivityLevel string   `gorm:"type:varchar(20)"`

	// Абонемент
	MembershipID    *string `gorm:"type:varchar(36);index"`
	MembershipStart *datatypes.Date
	MembershipEnd   *datatypes.Date

	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`

	Membership *Membership `gorm:"foreignKey:MembershipID"`
}

// FullName - "Имя Фамилия" для карточки тренера
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
