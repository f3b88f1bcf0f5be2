package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completeSession() *models.BookingSession {
	return &models.BookingSession{
		SessionID: "sess-1",
		Services: []models.ServiceLineItem{
			{ID: "svc-braids", Name: "Box Braids", Price: 1500, Duration: 120, Quantity: 1},
			{ID: "svc-trim", Name: "Trim", Price: 1000, Duration: 30, Quantity: 2},
		},
		Date: "2026-10-15",
		Time: "14:30",
		Customer: models.CustomerInfo{
			Name:  "Jane Wanjiku",
			Email: "jane@example.com",
			Phone: "+254712345678",
		},
		PaymentMethod: models.PaymentMethodAtSalon,
	}
}

func newSubmissionService(bookings *fakeBookingRepo, customers *fakeCustomerRepo) *DefaultSubmissionService {
	return &DefaultSubmissionService{
		Bookings:  bookings,
		Customers: customers,
		Logger:    zap.NewNop(),
	}
}

func TestSubmitReportsAllMissingFieldsAtOnce(t *testing.T) {
	bookings := &fakeBookingRepo{}
	customers := newFakeCustomerRepo()
	svc := newSubmissionService(bookings, customers)

	session := completeSession()
	session.Date = ""
	session.Time = ""
	session.Customer = models.CustomerInfo{}

	_, err := svc.Submit(context.Background(), session)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"date", "time", "name", "email", "phone"}, vErr.MissingFields)

	// Validation failures never write.
	assert.Empty(t, bookings.created)
	assert.Empty(t, customers.customers)
}

func TestSubmitReportsSingleMissingField(t *testing.T) {
	svc := newSubmissionService(&fakeBookingRepo{}, newFakeCustomerRepo())

	session := completeSession()
	session.Customer.Phone = "   "

	_, err := svc.Submit(context.Background(), session)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"phone"}, vErr.MissingFields)
	assert.EqualError(t, vErr, "missing required fields: phone")
}

func TestSubmitDerivesTotalsFromCart(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newSubmissionService(bookings, newFakeCustomerRepo())

	booked, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)

	assert.Equal(t, 3500, booked.TotalAmount)
	assert.Equal(t, 180, booked.TotalDuration)
	require.Len(t, booked.Services, 2)
	assert.Equal(t, 1500, booked.Services[0].LineTotal)
	assert.Equal(t, 2000, booked.Services[1].LineTotal)
	assert.Equal(t, models.BookingStatusConfirmed, booked.Status)

	expected := time.Date(2026, 10, 15, 14, 30, 0, 0, time.Local)
	assert.Equal(t, expected, booked.Appointment.DateTime)
}

func TestSubmitPaymentStatusByMethod(t *testing.T) {
	svc := newSubmissionService(&fakeBookingRepo{}, newFakeCustomerRepo())

	atSalon := completeSession()
	booked, err := svc.Submit(context.Background(), atSalon)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, booked.Payment.Status)
	assert.Equal(t, models.PaymentMethodAtSalon, booked.Payment.Method)

	paidNow := completeSession()
	paidNow.PaymentMethod = models.PaymentMethodMpesa
	booked, err = svc.Submit(context.Background(), paidNow)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, booked.Payment.Status)
	assert.Equal(t, 3500, booked.Payment.TotalAmount)
}

func TestSubmitBookingWriteFailureSkipsRollup(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: errors.New("mongo down")}
	customers := newFakeCustomerRepo()
	svc := newSubmissionService(bookings, customers)

	_, err := svc.Submit(context.Background(), completeSession())
	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Empty(t, customers.customers)
}

func TestSubmitRollupFailureIsSwallowed(t *testing.T) {
	customers := newFakeCustomerRepo()
	customers.upsertErr = errors.New("mongo down")
	svc := newSubmissionService(&fakeBookingRepo{}, customers)

	booked, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)
	assert.NotEmpty(t, booked.ID)
}

func TestSubmitAccumulatesCustomerBookingIDs(t *testing.T) {
	bookings := &fakeBookingRepo{}
	customers := newFakeCustomerRepo()
	svc := newSubmissionService(bookings, customers)

	first, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)

	again := completeSession()
	again.Date = "2026-11-02"
	second, err := svc.Submit(context.Background(), again)
	require.NoError(t, err)

	rollup, err := customers.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, rollup.BookingIDs)
}

func TestSubmitSchedulesReminder(t *testing.T) {
	scheduler := &fakeScheduler{}
	svc := newSubmissionService(&fakeBookingRepo{}, newFakeCustomerRepo())
	svc.Reminders = scheduler

	booked, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)
	assert.Equal(t, []string{booked.ID}, scheduler.scheduled)
}

func TestSubmitReminderFailureDoesNotFailSubmission(t *testing.T) {
	svc := newSubmissionService(&fakeBookingRepo{}, newFakeCustomerRepo())
	svc.Reminders = &fakeScheduler{err: errors.New("queue unavailable")}

	_, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)
}
