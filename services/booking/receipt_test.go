package booking

import (
	"context"
	"testing"

	"glamora/config"
	"glamora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildReceipt(t *testing.T) {
	config.AppConfig.Currency = "KSH"

	svc := newSubmissionService(&fakeBookingRepo{}, newFakeCustomerRepo())
	booked, err := svc.Submit(context.Background(), completeSession())
	require.NoError(t, err)

	receipt := BuildReceipt(booked)

	assert.Contains(t, receipt, "SALON BOOKING CONFIRMATION")
	assert.Contains(t, receipt, "Customer: Jane Wanjiku")
	assert.Contains(t, receipt, "Date: Thursday, October 15, 2026")
	assert.Contains(t, receipt, "Time: 14:30")
	assert.Contains(t, receipt, "Stylist: Any Available Stylist")
	assert.Contains(t, receipt, "Box Braids x1 - KSH 1,500")
	assert.Contains(t, receipt, "Trim x2 - KSH 2,000")
	assert.Contains(t, receipt, "Total Amount: KSH 3,500")
	assert.Contains(t, receipt, "Payment Method: Pay at Salon")
}

func TestBuildReceiptPaidViaMpesaAndNamedStylist(t *testing.T) {
	config.AppConfig.Currency = "KSH"
	config.AppConfig.CountryPrefix = "+254"

	gateway := &fakeGateway{}
	store := newMemSessionStore()
	wf := &DefaultPaymentWorkflow{
		Store: store,
		Submitter: &DefaultSubmissionService{
			Bookings:  &fakeBookingRepo{},
			Customers: newFakeCustomerRepo(),
			Logger:    zap.NewNop(),
		},
		Gateway: gateway,
		Logger:  zap.NewNop(),
	}
	session := seedSession(t, store)
	session.Stylist = &models.StylistSelection{ID: "sty-1", Name: "Aisha", Specialty: "Braiding"}
	require.NoError(t, store.Save(context.Background(), session))

	booked, err := wf.PayNow(context.Background(), session.SessionID, "+254712345678")
	require.NoError(t, err)

	receipt := BuildReceipt(booked)
	assert.Contains(t, receipt, "Stylist: Aisha")
	assert.Contains(t, receipt, "Payment Method: Paid via M-Pesa")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "950", formatAmount(950))
	assert.Equal(t, "3,500", formatAmount(3500))
	assert.Equal(t, "1,250,000", formatAmount(1250000))
	assert.Equal(t, "-3,500", formatAmount(-3500))
}
