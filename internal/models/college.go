package models

type College struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Address      string `json:"address" gorm:"type:text"`
	ContactEmail string `json:"contact_email"`
}
