package models

type Team struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	EventID   uint   `json:"event_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	CreatorID uint   `json:"creator_id" gorm:"not null"`
}

// TeamMember links a student to a team; a student appears at most once
// per team.
type TeamMember struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	TeamID    uint `json:"team_id" gorm:"index:idx_team_student,unique;not null"`
	StudentID uint `json:"student_id" gorm:"index:idx_team_student,unique;not null"`
}
