package booking

import (
	"context"

	serviceRepo "glamora/database/repository/service"
	stylistRepo "glamora/database/repository/stylist"
	"glamora/models"

	"go.uber.org/zap"
)

// SessionSummary is a session view with derived totals, recomputed from the
// current cart contents on every read.
type SessionSummary struct {
	Session       *models.BookingSession `json:"session"`
	TotalPrice    int                    `json:"totalPrice"`
	TotalDuration int                    `json:"totalDuration"`
}

// SessionService manages the stateful booking flow: the service cart, the
// stylist, the appointment date and time, the customer details and the
// payment method. Every mutation loads the session from the store, applies
// the change and saves it back.
type SessionService interface {
	StartSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*SessionSummary, error)
	AddService(ctx context.Context, sessionID, serviceID string) (*SessionSummary, error)
	RemoveService(ctx context.Context, sessionID, serviceID string) (*SessionSummary, error)
	UpdateQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*SessionSummary, error)
	SetStylist(ctx context.Context, sessionID, stylistID string) (*SessionSummary, error)
	SetDate(ctx context.Context, sessionID, date string) (*SessionSummary, error)
	SetTime(ctx context.Context, sessionID, timeOfDay string) (*SessionSummary, error)
	SetCustomerInfo(ctx context.Context, sessionID string, info models.CustomerInfo) (*SessionSummary, error)
	SetPaymentMethod(ctx context.Context, sessionID, method string) (*SessionSummary, error)
	Clear(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements SessionService over a SessionStore
// and the read-only catalog repositories.
type DefaultBookingSessionService struct {
	Store    SessionStore
	Catalog  serviceRepo.ServiceRepository
	Stylists stylistRepo.StylistRepository
	Logger   *zap.Logger
}
