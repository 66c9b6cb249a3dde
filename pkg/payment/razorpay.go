package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the slice of the payment provider the workflows use. Amounts
// are in minor currency units (paise for INR).
type Gateway interface {
	CreateOrder(amountMinorUnits int, currency, receipt string) (orderID string, err error)
}

type RazorpayService struct {
	client *razorpay.Client
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (s *RazorpayService) CreateOrder(amountMinorUnits int, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}

	return orderID, nil
}
