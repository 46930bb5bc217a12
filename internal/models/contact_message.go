package models

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null"`
	Email   string `gorm:"type:varchar(120);not null"`
	Phone   string `gorm:"type:varchar(20)"`
	Subject string `gorm:"type:varchar(200)"`
	Message string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"not null;default:false;index"`
}
