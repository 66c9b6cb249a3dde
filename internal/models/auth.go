package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=Student College"`

	// Student fields
	StudentName string `json:"student_name"`
	CollegeID   *uint  `json:"college_id"`

	// College fields
	CollegeName  string `json:"college_name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`

	CaptchaToken string `json:"captcha_token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	Role        Role   `json:"role"`
	Email       string `json:"email"`
	StudentName string `json:"student_name,omitempty"`
	CollegeName string `json:"college_name,omitempty"`
}
