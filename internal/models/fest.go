package models

// Dates are stored as YYYY-MM-DD strings and parsed on use.
type Fest struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CollegeID   uint   `json:"college_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	StartDate   string `json:"start_date" gorm:"not null"`
	EndDate     string `json:"end_date" gorm:"not null"`
}

type FestRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
}
