package models

type Student struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	CollegeID uint   `json:"college_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
}
