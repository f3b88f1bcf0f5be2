package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "glamora/database/repository/booking"
	customerRepo "glamora/database/repository/customer"
	"glamora/models"
	"glamora/services/events"

	"go.uber.org/zap"
)

// ReminderScheduler enqueues an appointment reminder for a new booking.
// Scheduling is best-effort; failures never fail the submission.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, booking *models.Booking) error
}

// Submitter turns a validated session into a persisted booking.
type Submitter interface {
	Submit(ctx context.Context, session *models.BookingSession) (*models.Booking, error)
}

// DefaultSubmissionService implements Submitter: it validates the aggregate
// selection, assembles the immutable booking record, writes it and
// merge-upserts the customer rollup.
type DefaultSubmissionService struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Events    *events.Hub
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// Submit persists the booking described by the session. It fails fast with a
// ValidationError naming every absent field before any write. A failed
// booking write returns a PersistenceError and skips the customer upsert; a
// failed customer upsert after a successful write is logged and swallowed,
// so the submission still succeeds.
func (s *DefaultSubmissionService) Submit(ctx context.Context, session *models.BookingSession) (*models.Booking, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	booking, err := assembleBooking(session)
	if err != nil {
		return nil, err
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, &PersistenceError{Op: "booking write", Err: err}
	}

	// Best-effort rollup. The booking already exists; an upsert failure
	// leaves it unlinked from the customer document but is not surfaced.
	if err := s.Customers.UpsertOnBooking(ctx, booking.Customer, id, booking.CreatedAt); err != nil {
		s.Logger.Error("customer rollup upsert failed",
			zap.String("bookingID", id),
			zap.String("email", booking.Customer.Email),
			zap.Error(err))
	}

	if s.Events != nil {
		s.Events.Publish(events.Event{
			Type:       events.TypeBookingCreated,
			Collection: "bookings",
			ID:         id,
			Payload:    booking,
		})
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, booking); err != nil {
			s.Logger.Warn("failed to schedule appointment reminder",
				zap.String("bookingID", id),
				zap.Error(err))
		}
	}

	s.Logger.Info("booking submitted",
		zap.String("bookingID", id),
		zap.Int("totalAmount", booking.TotalAmount),
		zap.String("paymentMethod", booking.Payment.Method))
	return booking, nil
}

// validateSession checks the submission preconditions and reports every
// missing field at once.
func validateSession(session *models.BookingSession) error {
	var missing []string
	if session.Date == "" {
		missing = append(missing, "date")
	}
	if session.Time == "" {
		missing = append(missing, "time")
	}
	if strings.TrimSpace(session.Customer.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(session.Customer.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(session.Customer.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// assembleBooking maps the session onto the persisted record shape with
// derived totals.
func assembleBooking(session *models.BookingSession) (*models.Booking, error) {
	services := make([]models.BookedService, 0, len(session.Services))
	for _, item := range session.Services {
		services = append(services, models.BookedService{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Duration:  item.Duration,
			Quantity:  item.Quantity,
			LineTotal: item.Price * item.Quantity,
		})
	}

	// Date and time combine into a single local timestamp.
	dateTime, err := time.ParseInLocation("2006-01-02T15:04", session.Date+"T"+session.Time, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment datetime %sT%s: %w", session.Date, session.Time, err)
	}

	paymentStatus := models.PaymentStatusPaid
	if session.PaymentMethod == models.PaymentMethodAtSalon {
		paymentStatus = models.PaymentStatusPending
	}

	return &models.Booking{
		Customer: session.Customer,
		Appointment: models.Appointment{
			Date:     session.Date,
			Time:     session.Time,
			DateTime: dateTime,
		},
		Services: services,
		Stylist:  session.Stylist,
		Payment: models.PaymentInfo{
			Method:      session.PaymentMethod,
			Status:      paymentStatus,
			TotalAmount: session.TotalPrice(),
		},
		Status:        models.BookingStatusConfirmed,
		TotalAmount:   session.TotalPrice(),
		TotalDuration: session.TotalDuration(),
	}, nil
}
