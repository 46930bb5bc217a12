package models

import "time"

type Booking struct {
	BaseModel
	UserID      string        `gorm:"type:varchar(36);not null;index:idx_booking_user_class"`
	ClassID     string        `gorm:"type:varchar(36);not null;index:idx_booking_user_class"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'"`
	BookedAt    time.Time     `gorm:"not null;index"`
	CancelledAt *time.Time
	Attended    bool `gorm:"not null;default:false"`

	User  *User  `gorm:"foreignKey:UserID"`
	Class *Class `gorm:"foreignKey:ClassID"`
}
