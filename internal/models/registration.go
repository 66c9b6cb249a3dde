package models

import (
	"time"
)

const (
	RegistrationStatusRegistered = "registered"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type EventRegistration struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	EventID             uint      `json:"event_id" gorm:"index:idx_event_student,unique;not null"`
	StudentID           uint      `json:"student_id" gorm:"index:idx_event_student,unique;not null"`
	TeamID              *uint     `json:"team_id"`
	Status              string    `json:"status" gorm:"type:varchar(20);not null;default:'registered'"`
	PaymentStatus       string    `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending'"`
	CertificateApproved bool      `json:"certificate_approved" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at"`
}

const (
	RegistrationTypeSolo = "solo"
	RegistrationTypeTeam = "team"
)

type EventRegistrationRequest struct {
	EventID          uint   `json:"event_id" validate:"required"`
	RegistrationType string `json:"registration_type" validate:"required,oneof=solo team"`
	TeamID           *uint  `json:"team_id"`
	TeamName         string `json:"team_name"`
	MemberIDs        []uint `json:"member_ids"`
}
