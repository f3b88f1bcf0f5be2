package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"glamora/config"
	"glamora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// StartSession creates a new empty booking session, assigns it a unique
// SessionID and stores it. The customer phone is prefilled with the
// configured country prefix and payment defaults to pay-at-salon.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID:     uuid.New().String(),
		Services:      []models.ServiceLineItem{},
		Customer:      models.CustomerInfo{Phone: config.AppConfig.CountryPrefix},
		PaymentMethod: models.PaymentMethodAtSalon,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the session with its derived totals.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*SessionSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return summarize(session), nil
}

// AddService resolves a catalog service and adds it to the cart. The price
// and duration always come from the catalog, never from the client.
func (s *DefaultBookingSessionService) AddService(ctx context.Context, sessionID, serviceID string) (*SessionSummary, error) {
	service, err := s.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found in catalog: %w", err)
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.AddService(models.ServiceLineItem{
			ID:       service.ID,
			Name:     service.Name,
			Price:    service.Price,
			Duration: service.Duration,
		})
		return nil
	})
}

// RemoveService deletes a line item from the cart; absent ids are a no-op.
func (s *DefaultBookingSessionService) RemoveService(ctx context.Context, sessionID, serviceID string) (*SessionSummary, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.RemoveService(serviceID)
		return nil
	})
}

// UpdateQuantity replaces a line item's quantity; zero or less removes it.
func (s *DefaultBookingSessionService) UpdateQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*SessionSummary, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.UpdateQuantity(serviceID, quantity)
		return nil
	})
}

// SetStylist records the chosen stylist as a snapshot. An empty stylistID
// clears the choice, meaning "any available stylist".
func (s *DefaultBookingSessionService) SetStylist(ctx context.Context, sessionID, stylistID string) (*SessionSummary, error) {
	var selection *models.StylistSelection
	if stylistID != "" {
		stylist, err := s.Stylists.GetByID(ctx, stylistID)
		if err != nil {
			return nil, fmt.Errorf("stylist not found: %w", err)
		}
		selection = &models.StylistSelection{
			ID:        stylist.ID,
			Name:      stylist.Name,
			Specialty: stylist.Specialty,
		}
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Stylist = selection
		return nil
	})
}

// SetDate records the appointment date. Past dates are rejected here, at
// input time, in addition to whatever the client enforces.
func (s *DefaultBookingSessionService) SetDate(ctx context.Context, sessionID, date string) (*SessionSummary, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	// ISO dates compare correctly as strings.
	if today := time.Now().Format("2006-01-02"); date < today {
		return nil, fmt.Errorf("date %s is in the past", date)
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Date = date
		return nil
	})
}

// SetTime records the appointment time in 24-hour HH:MM form.
func (s *DefaultBookingSessionService) SetTime(ctx context.Context, sessionID, timeOfDay string) (*SessionSummary, error) {
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, fmt.Errorf("invalid time %q, expected HH:MM: %w", timeOfDay, err)
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Time = timeOfDay
		return nil
	})
}

// SetCustomerInfo records the contact details. Email shape and the phone
// country prefix are checked here so submission only has to check presence.
func (s *DefaultBookingSessionService) SetCustomerInfo(ctx context.Context, sessionID string, info models.CustomerInfo) (*SessionSummary, error) {
	if strings.TrimSpace(info.Name) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if !emailPattern.MatchString(info.Email) {
		return nil, fmt.Errorf("invalid email address %q", info.Email)
	}
	prefix := config.AppConfig.CountryPrefix
	if !strings.HasPrefix(info.Phone, prefix) {
		return nil, fmt.Errorf("phone number must start with %s", prefix)
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Customer = info
		return nil
	})
}

// SetPaymentMethod records how the customer intends to pay.
func (s *DefaultBookingSessionService) SetPaymentMethod(ctx context.Context, sessionID, method string) (*SessionSummary, error) {
	if method != models.PaymentMethodMpesa && method != models.PaymentMethodAtSalon {
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.PaymentMethod = method
		return nil
	})
}

// Clear deletes the session entirely: cart, stylist, schedule, customer info
// and payment method all reset by virtue of deletion. Called when the user
// leaves the confirmation page, never before it renders.
func (s *DefaultBookingSessionService) Clear(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Debug("booking session cleared", zap.String("sessionID", sessionID))
	}
	return nil
}

// mutate loads a session, applies fn and saves the result.
func (s *DefaultBookingSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*SessionSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return summarize(session), nil
}

func summarize(session *models.BookingSession) *SessionSummary {
	return &SessionSummary{
		Session:       session,
		TotalPrice:    session.TotalPrice(),
		TotalDuration: session.TotalDuration(),
	}
}
