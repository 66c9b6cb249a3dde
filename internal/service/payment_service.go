package service

import (
	"fmt"
	"strings"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
	"github.com/unboundhq/unbound-backend/pkg/email"
	"github.com/unboundhq/unbound-backend/pkg/payment"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

type PaymentService struct {
	gateway       payment.Gateway
	payments      PaymentStore
	registrations RegistrationStore
	events        EventStore
	students      StudentStore
	notifier      email.Notifier
	logger        *zap.Logger
}

func NewPaymentService(
	gateway payment.Gateway,
	payments PaymentStore,
	registrations RegistrationStore,
	events EventStore,
	students StudentStore,
	notifier email.Notifier,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:       gateway,
		payments:      payments,
		registrations: registrations,
		events:        events,
		students:      students,
		notifier:      notifier,
		logger:        logger,
	}
}

// CreateOrder opens a gateway order for a registration and tracks it as a
// pending payment. The payment row is only written after the gateway call
// succeeds, so a gateway failure leaves no partial state.
func (s *PaymentService) CreateOrder(registrationID uint, amount int, currency, receiptEmail string) (*models.OrderResponse, error) {
	if currency == "" {
		currency = defaultCurrency
	}

	reg, err := s.registrations.GetByID(registrationID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "registration %d not found", registrationID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up registration")
	}

	receipt := fmt.Sprintf("reg-%d", reg.ID)
	orderID, err := s.gateway.CreateOrder(amount*100, currency, receipt) // minor units
	if err != nil {
		return nil, apperr.Wrap(apperr.Gateway, err, fmt.Sprintf("payment gateway error for registration %d", registrationID))
	}

	if _, err := s.payments.Create(&models.Payment{
		RegistrationID:  reg.ID,
		RazorpayOrderID: orderID,
		Status:          models.PaymentStatusPending,
		Amount:          amount,
		Currency:        currency,
		ReceiptEmail:    receiptEmail,
	}); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to record payment")
	}

	s.logger.Info("payment order created",
		zap.String("order_id", orderID),
		zap.Uint("registration_id", reg.ID),
		zap.Int("amount", amount),
		zap.String("currency", currency),
	)

	return &models.OrderResponse{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// CreateOrderForEvent opens a gateway order before any registration
// exists. No payment row is written (there is nothing to attach it to),
// so callbacks for such orders land in the no-op branch of Reconcile.
func (s *PaymentService) CreateOrderForEvent(eventID uint, amount int, currency, receiptEmail string) (*models.OrderResponse, error) {
	if currency == "" {
		currency = defaultCurrency
	}

	if _, err := s.events.GetByID(eventID); err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.Validation, "invalid event id %d", eventID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up event")
	}

	receipt := fmt.Sprintf("event-%d", eventID)
	orderID, err := s.gateway.CreateOrder(amount*100, currency, receipt)
	if err != nil {
		return nil, apperr.Wrap(apperr.Gateway, err, fmt.Sprintf("payment gateway error for event %d", eventID))
	}

	return &models.OrderResponse{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// Reconcile applies a gateway status callback. Unknown order ids are a
// silent no-op: they may belong to untracked pre-registration orders or
// duplicate callbacks. Status updates are last write wins; there is no
// sequence check, so an out-of-order callback can regress the status.
func (s *PaymentService) Reconcile(orderID, status, paymentID string) error {
	pay, err := s.payments.GetByOrderID(orderID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("callback for unknown order ignored", zap.String("order_id", orderID))
			return nil
		}
		return apperr.Wrap(apperr.Internal, err, "failed to look up payment")
	}

	pay.Status = status
	pay.RazorpayPaymentID = paymentID
	if err := s.payments.Update(pay); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to update payment")
	}

	reg, err := s.registrations.GetByID(pay.RegistrationID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("payment without registration", zap.String("order_id", orderID))
			return nil
		}
		return apperr.Wrap(apperr.Internal, err, "failed to look up registration")
	}

	reg.PaymentStatus = status
	if err := s.registrations.Update(reg); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to update registration")
	}

	s.logger.Info("payment reconciled",
		zap.String("order_id", orderID),
		zap.String("status", status),
		zap.String("payment_id", paymentID),
	)

	if strings.EqualFold(status, models.PaymentStatusPaid) && pay.ReceiptEmail != "" {
		s.sendReceipt(pay, reg, orderID, paymentID)
	}
	return nil
}

func (s *PaymentService) sendReceipt(pay *models.Payment, reg *models.EventRegistration, orderID, paymentID string) {
	studentName := ""
	if student, err := s.students.GetByID(reg.StudentID); err == nil {
		studentName = student.Name
	}
	eventName := ""
	if event, err := s.events.GetByID(reg.EventID); err == nil {
		eventName = event.Name
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nYour payment for event '%s' (amount: %d %s) was successful.\nPayment ID: %s\nOrder ID: %s\n\nThank you for registering!\n\n- Unbound Platform Team",
		studentName, eventName, pay.Amount, pay.Currency, paymentID, orderID,
	)

	if err := s.notifier.Send(pay.ReceiptEmail, "Payment Receipt - Unbound Event Registration", body); err != nil {
		s.logger.Warn("receipt email failed",
			zap.String("order_id", orderID), zap.Error(err))
	}
}
