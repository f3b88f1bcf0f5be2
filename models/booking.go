package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment methods and statuses.
const (
	PaymentMethodMpesa   = "mpesa"
	PaymentMethodAtSalon = "pay_at_salon"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// BookedService is the persisted shape of one cart line item on a booking.
type BookedService struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Price     int    `bson:"price" json:"price"`
	Duration  int    `bson:"duration" json:"duration"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	LineTotal int    `bson:"line_total" json:"lineTotal"`
}

// Appointment holds the scheduled date and time of a booking.
type Appointment struct {
	Date     string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time     string    `bson:"time" json:"time"` // HH:MM, 24-hour
	DateTime time.Time `bson:"datetime" json:"datetime"`
}

// PaymentInfo records how a booking is paid for.
type PaymentInfo struct {
	Method      string `bson:"method" json:"method"`
	Status      string `bson:"status" json:"status"`
	TotalAmount int    `bson:"total_amount" json:"totalAmount"`
}

// Booking is the immutable record of a confirmed appointment. It is written
// exactly once per submission; only its status is mutated afterwards, by
// admin transitions.
type Booking struct {
	ID            string            `bson:"id" json:"id"`
	Customer      CustomerInfo      `bson:"customer" json:"customer"`
	Appointment   Appointment       `bson:"appointment" json:"appointment"`
	Services      []BookedService   `bson:"services" json:"services"`
	Stylist       *StylistSelection `bson:"stylist,omitempty" json:"stylist,omitempty"`
	Payment       PaymentInfo       `bson:"payment" json:"payment"`
	Status        string            `bson:"status" json:"status"`
	TotalAmount   int               `bson:"total_amount" json:"totalAmount"`
	TotalDuration int               `bson:"total_duration" json:"totalDuration"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updatedAt"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status string
	Date   string // YYYY-MM-DD
	Email  string
}

// CanTransitionTo reports whether a status change is a valid admin transition.
func CanTransitionTo(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCompleted || to == BookingStatusCancelled
	default:
		return false
	}
}
