package bookingRepo

import (
	"context"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
