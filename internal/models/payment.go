package models

import (
	"time"
)

type Payment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RegistrationID    uint      `json:"registration_id" gorm:"index;not null"`
	RazorpayOrderID   string    `json:"razorpay_order_id" gorm:"type:varchar(100);uniqueIndex;not null"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" gorm:"type:varchar(100)"`
	Status            string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Amount            int       `json:"amount" gorm:"not null"`
	Currency          string    `json:"currency" gorm:"type:varchar(10);default:'INR'"`
	ReceiptEmail      string    `json:"receipt_email"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateOrderRequest struct {
	RegistrationID uint   `json:"registration_id" validate:"required"`
	Amount         int    `json:"amount" validate:"required,gte=1"`
	Currency       string `json:"currency"`
	ReceiptEmail   string `json:"receipt_email" validate:"omitempty,email"`
}

type CreateOrderForEventRequest struct {
	EventID      uint   `json:"event_id" validate:"required"`
	Amount       int    `json:"amount" validate:"required,gte=1"`
	Currency     string `json:"currency"`
	ReceiptEmail string `json:"receipt_email" validate:"omitempty,email"`
}

// VerifyPaymentRequest is the gateway status callback payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id" validate:"required"`
	Status          string `json:"status" validate:"required"`
	PaymentID       string `json:"payment_id"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
