package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"glamora/models"
	"glamora/services/payment"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.BookingSession)}
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.New("session not found")
	}
	copied := *session
	return &copied, nil
}

func (s *memSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.SessionID] = &copied
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// fakeBookingRepo records created bookings and assigns sequential ids.
type fakeBookingRepo struct {
	created   []*models.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	booking.ID = fmt.Sprintf("bk-%d", len(r.created)+1)
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.created = append(r.created, booking)
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range r.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeBookingRepo) GetAll(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.created {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for _, b := range r.created {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

// fakeCustomerRepo mirrors the merge-upsert keyed by email.
type fakeCustomerRepo struct {
	customers map[string]*models.Customer
	upsertErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
}

func (r *fakeCustomerRepo) UpsertOnBooking(ctx context.Context, info models.CustomerInfo, bookingID string, at time.Time) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	c, ok := r.customers[info.Email]
	if !ok {
		c = &models.Customer{Email: info.Email}
		r.customers[info.Email] = c
	}
	c.Name = info.Name
	c.Phone = info.Phone
	for _, id := range c.BookingIDs {
		if id == bookingID {
			return nil
		}
	}
	c.BookingIDs = append(c.BookingIDs, bookingID)
	c.TotalBookings = 1
	c.LastBooking = at
	return nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c, ok := r.customers[email]
	if !ok {
		return nil, errors.New("customer not found")
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

// fakeGateway simulates the charge endpoint without HTTP.
type fakeGateway struct {
	chargeErr error
	charges   []payment.ChargeRequest
}

func (g *fakeGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	g.charges = append(g.charges, req)
	if g.chargeErr != nil {
		return nil, g.chargeErr
	}
	return &payment.ChargeResult{Reference: "MPESA-REF-001", Status: "success"}, nil
}

// fakeScheduler records reminder scheduling calls.
type fakeScheduler struct {
	scheduled []string
	err       error
}

func (s *fakeScheduler) ScheduleAppointmentReminder(ctx context.Context, booking *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, booking.ID)
	return nil
}
