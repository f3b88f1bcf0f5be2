package booking

import (
	"context"
	"errors"
	"testing"

	"glamora/config"
	"glamora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWorkflow(t *testing.T, gateway *fakeGateway) (*DefaultPaymentWorkflow, *memSessionStore, *fakeBookingRepo) {
	t.Helper()
	config.AppConfig.CountryPrefix = "+254"

	store := newMemSessionStore()
	bookings := &fakeBookingRepo{}
	submitter := &DefaultSubmissionService{
		Bookings:  bookings,
		Customers: newFakeCustomerRepo(),
		Logger:    zap.NewNop(),
	}
	wf := &DefaultPaymentWorkflow{
		Store:     store,
		Submitter: submitter,
		Gateway:   gateway,
		Logger:    zap.NewNop(),
	}
	return wf, store, bookings
}

func seedSession(t *testing.T, store *memSessionStore) *models.BookingSession {
	t.Helper()
	session := completeSession()
	require.NoError(t, store.Save(context.Background(), session))
	return session
}

func TestPayLaterSubmitsWithPendingPayment(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, bookings := newWorkflow(t, gateway)
	session := seedSession(t, store)

	booked, err := wf.PayLater(context.Background(), session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentMethodAtSalon, booked.Payment.Method)
	assert.Equal(t, models.PaymentStatusPending, booked.Payment.Status)
	assert.Len(t, bookings.created, 1)
	assert.Empty(t, gateway.charges, "pay-at-salon must not touch the gateway")
}

func TestPayNowChargesThenSubmitsPaid(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, bookings := newWorkflow(t, gateway)
	session := seedSession(t, store)

	booked, err := wf.PayNow(context.Background(), session.SessionID, "+254712345678")
	require.NoError(t, err)

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 3500, gateway.charges[0].Amount)
	assert.Equal(t, models.PaymentMethodMpesa, booked.Payment.Method)
	assert.Equal(t, models.PaymentStatusPaid, booked.Payment.Status)
	assert.Len(t, bookings.created, 1)
}

func TestPayNowRejectsForeignPhonePrefix(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, bookings := newWorkflow(t, gateway)
	session := seedSession(t, store)

	_, err := wf.PayNow(context.Background(), session.SessionID, "0712345678")
	var pErr *PaymentError
	require.ErrorAs(t, err, &pErr)
	assert.Empty(t, gateway.charges)
	assert.Empty(t, bookings.created)
}

func TestPayNowChargeFailureLeavesSessionIntact(t *testing.T) {
	gateway := &fakeGateway{chargeErr: errors.New("insufficient funds")}
	wf, store, bookings := newWorkflow(t, gateway)
	session := seedSession(t, store)

	_, err := wf.PayNow(context.Background(), session.SessionID, "+254712345678")
	var pErr *PaymentError
	require.ErrorAs(t, err, &pErr)

	assert.Empty(t, bookings.created)
	// The session survives for a retry, cart untouched.
	kept, err := store.Get(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Len(t, kept.Services, 2)
	assert.Equal(t, 3500, kept.TotalPrice())
}

func TestPayNowSubmitFailureAfterChargeMentionsSupport(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, bookings := newWorkflow(t, gateway)
	bookings.createErr = errors.New("mongo down")
	session := seedSession(t, store)

	_, err := wf.PayNow(context.Background(), session.SessionID, "+254712345678")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact support")
	require.Len(t, gateway.charges, 1, "the charge went through before the write failed")
}

func TestConfirmEmptyCartIsRejected(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, _ := newWorkflow(t, gateway)
	session := completeSession()
	session.Services = nil
	require.NoError(t, store.Save(context.Background(), session))

	_, err := wf.PayNow(context.Background(), session.SessionID, "+254712345678")
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = wf.PayLater(context.Background(), session.SessionID)
	assert.ErrorIs(t, err, ErrNoServices)
	assert.Empty(t, gateway.charges)
}

func TestWorkflowSessionSurvivesSuccessfulSubmission(t *testing.T) {
	gateway := &fakeGateway{}
	wf, store, _ := newWorkflow(t, gateway)
	session := seedSession(t, store)

	_, err := wf.PayLater(context.Background(), session.SessionID)
	require.NoError(t, err)

	// Clearing is a separate, explicit step.
	_, err = store.Get(context.Background(), session.SessionID)
	assert.NoError(t, err)
}
