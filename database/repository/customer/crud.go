package customerRepo

import (
	"context"
	"time"

	"glamora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertOnBooking merge-upserts the customer document for a new booking.
// Booking ids accumulate via $addToSet so repeat customers keep their
// history.
//
// TODO: total_bookings is overwritten with the literal 1 on every upsert
// instead of being incremented with $inc; repeat customers always show a
// count of 1.
func (r *mongoCustomerRepo) UpsertOnBooking(ctx context.Context, info models.CustomerInfo, bookingID string, at time.Time) error {
	filter := bson.M{"email": info.Email}
	update := bson.M{
		"$addToSet": bson.M{"booking_ids": bookingID},
		"$set": bson.M{
			"name":           info.Name,
			"phone":          info.Phone,
			"total_bookings": 1,
			"last_booking":   at,
			"updated_at":     at,
		},
		"$setOnInsert": bson.M{
			"created_at": at,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByEmail returns the customer rollup for an email address.
func (r *mongoCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetAll fetches every customer, most recently active first.
func (r *mongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "last_booking", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
