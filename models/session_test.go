package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func braids() ServiceLineItem {
	return ServiceLineItem{ID: "svc-braids", Name: "Box Braids", Price: 1500, Duration: 120}
}

func trim() ServiceLineItem {
	return ServiceLineItem{ID: "svc-trim", Name: "Trim", Price: 1000, Duration: 30}
}

func TestAddServiceIncrementsExistingLine(t *testing.T) {
	s := &BookingSession{}
	s.AddService(braids())
	s.AddService(braids())

	assert.Len(t, s.Services, 1)
	assert.Equal(t, 2, s.Services[0].Quantity)
}

func TestAddServiceKeepsIDsUnique(t *testing.T) {
	s := &BookingSession{}
	s.AddService(braids())
	s.AddService(trim())
	s.AddService(braids())

	assert.Len(t, s.Services, 2)
	seen := map[string]bool{}
	for _, item := range s.Services {
		assert.False(t, seen[item.ID], "duplicate cart line for %s", item.ID)
		seen[item.ID] = true
	}
}

func TestRemoveServiceAbsentIDIsNoOp(t *testing.T) {
	s := &BookingSession{}
	s.AddService(braids())
	s.RemoveService("svc-unknown")

	assert.Len(t, s.Services, 1)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := &BookingSession{}
	s.AddService(braids())
	s.AddService(trim())

	s.UpdateQuantity("svc-braids", 0)
	assert.Len(t, s.Services, 1)
	assert.Equal(t, "svc-trim", s.Services[0].ID)

	s.UpdateQuantity("svc-trim", -3)
	assert.Empty(t, s.Services)
}

func TestTotalsRecomputeFromCart(t *testing.T) {
	s := &BookingSession{}
	s.AddService(braids())
	s.AddService(trim())
	s.UpdateQuantity("svc-trim", 2)

	assert.Equal(t, 1500+1000*2, s.TotalPrice())
	assert.Equal(t, 120+30*2, s.TotalDuration())

	s.UpdateQuantity("svc-trim", 1)
	assert.Equal(t, 2500, s.TotalPrice())
	assert.Equal(t, 150, s.TotalDuration())

	s.RemoveService("svc-braids")
	s.RemoveService("svc-trim")
	assert.Zero(t, s.TotalPrice())
	assert.Zero(t, s.TotalDuration())
}

func TestCanTransitionTo(t *testing.T) {
	assert.True(t, CanTransitionTo(BookingStatusPending, BookingStatusConfirmed))
	assert.True(t, CanTransitionTo(BookingStatusPending, BookingStatusCancelled))
	assert.True(t, CanTransitionTo(BookingStatusConfirmed, BookingStatusCompleted))
	assert.True(t, CanTransitionTo(BookingStatusConfirmed, BookingStatusCancelled))

	assert.False(t, CanTransitionTo(BookingStatusPending, BookingStatusCompleted))
	assert.False(t, CanTransitionTo(BookingStatusCompleted, BookingStatusPending))
	assert.False(t, CanTransitionTo(BookingStatusCancelled, BookingStatusConfirmed))
}
