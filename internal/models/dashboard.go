package models

type EarningsReport struct {
	TotalEarnings int            `json:"total_earnings"`
	Breakdown     map[string]int `json:"breakdown"` // event name -> paid amount
}

type EventRegistrationStats struct {
	Total  int `json:"total"`
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
}

type RegistrationStats struct {
	TotalRegistrations  int                               `json:"total_registrations"`
	PaidRegistrations   int                               `json:"paid_registrations"`
	UnpaidRegistrations int                               `json:"unpaid_registrations"`
	EventWise           map[string]EventRegistrationStats `json:"event_wise"`
}

type FestStats struct {
	Registrations int `json:"registrations"`
	Earnings      int `json:"earnings"`
}

type DateStats struct {
	Registrations int `json:"registrations"`
	Earnings      int `json:"earnings"`
}

type StudentDashboardStats struct {
	TotalRegistrations int `json:"total_registrations"`
	PaidRegistrations  int `json:"paid_registrations"`
	PendingPayments    int `json:"pending_payments"`
	UpcomingEvents     int `json:"upcoming_events"`
}

type RegistrationSummary struct {
	RegistrationID      uint   `json:"registration_id"`
	EventID             uint   `json:"event_id"`
	EventName           string `json:"event_name"`
	EventDate           string `json:"event_date"`
	FestName            string `json:"fest_name,omitempty"`
	Status              string `json:"status"`
	PaymentStatus       string `json:"payment_status"`
	CertificateApproved bool   `json:"certificate_approved"`
}

type ApproveCertificatesRequest struct {
	RegistrationIDs []uint `json:"registration_ids" validate:"required,min=1"`
}
