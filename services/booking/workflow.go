package booking

import (
	"context"
	"fmt"
	"strings"

	"glamora/config"
	"glamora/models"
	"glamora/services/payment"

	"go.uber.org/zap"
)

// PaymentWorkflow drives the two mutually exclusive confirmation paths: an
// immediate mobile-money charge followed by submission, or a deferred
// pay-at-salon submission.
type PaymentWorkflow interface {
	PayNow(ctx context.Context, sessionID, phone string) (*models.Booking, error)
	PayLater(ctx context.Context, sessionID string) (*models.Booking, error)
}

// DefaultPaymentWorkflow implements PaymentWorkflow. Neither path retries
// automatically: a failed charge or write is surfaced and the session is
// left intact for a manual retry.
type DefaultPaymentWorkflow struct {
	Store     SessionStore
	Submitter Submitter
	Gateway   payment.Gateway
	Logger    *zap.Logger
}

// PayNow validates the phone, charges the gateway synchronously and submits
// the booking only after the charge succeeds. A submission failure after a
// captured payment is a known unreconciled edge: the error instructs the
// customer to contact support and nothing is retried.
func (w *DefaultPaymentWorkflow) PayNow(ctx context.Context, sessionID, phone string) (*models.Booking, error) {
	session, err := w.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Services) == 0 {
		return nil, ErrNoServices
	}

	prefix := config.AppConfig.CountryPrefix
	if !strings.HasPrefix(phone, prefix) {
		return nil, &PaymentError{Message: fmt.Sprintf("phone number must start with %s", prefix)}
	}

	charge := payment.ChargeRequest{
		Phone:  phone,
		Amount: session.TotalPrice(),
		BookingDetails: map[string]interface{}{
			"services": session.Services,
			"stylist":  session.Stylist,
			"date":     session.Date,
			"time":     session.Time,
			"customer": session.Customer,
		},
	}
	result, err := w.Gateway.Charge(ctx, charge)
	if err != nil {
		return nil, &PaymentError{Message: "payment failed, try again", Err: err}
	}
	w.Logger.Info("charge captured",
		zap.String("sessionID", sessionID),
		zap.String("reference", result.Reference))

	session.PaymentMethod = models.PaymentMethodMpesa
	if err := w.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	booking, err := w.Submitter.Submit(ctx, session)
	if err != nil {
		w.Logger.Error("booking write failed after captured payment",
			zap.String("sessionID", sessionID),
			zap.String("reference", result.Reference),
			zap.Error(err))
		return nil, fmt.Errorf("payment succeeded but saving the booking failed, please contact support: %w", err)
	}
	return booking, nil
}

// PayLater records the deferred payment method and submits directly.
func (w *DefaultPaymentWorkflow) PayLater(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := w.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Services) == 0 {
		return nil, ErrNoServices
	}

	session.PaymentMethod = models.PaymentMethodAtSalon
	if err := w.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	return w.Submitter.Submit(ctx, session)
}
