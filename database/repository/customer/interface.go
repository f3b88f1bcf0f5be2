package customerRepo

import (
	"context"
	"time"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository maintains the per-customer rollup documents.
type CustomerRepository interface {
	// UpsertOnBooking merges a new booking into the customer document keyed
	// by email, creating the document if it does not exist yet.
	UpsertOnBooking(ctx context.Context, info models.CustomerInfo, bookingID string, at time.Time) error
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a new CustomerRepository instance using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCustomerRepo{
		coll: db.Collection("customers"),
	}
}
