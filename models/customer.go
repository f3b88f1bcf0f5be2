package models

import "time"

// Customer is the per-customer rollup document, keyed by email. It is
// merge-upserted on every successful booking rather than overwritten, so the
// booking-id list accumulates across visits.
type Customer struct {
	Email         string    `bson:"email" json:"email"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone" json:"phone"`
	BookingIDs    []string  `bson:"booking_ids" json:"bookingIds"`
	TotalBookings int       `bson:"total_bookings" json:"totalBookings"`
	LastBooking   time.Time `bson:"last_booking" json:"lastBooking"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
