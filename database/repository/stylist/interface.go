package stylistRepo

import (
	"context"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StylistRepository manages salon staff available for booking.
type StylistRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]models.Stylist, error)
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	Create(ctx context.Context, stylist *models.Stylist) (string, error)
	Update(ctx context.Context, stylist *models.Stylist) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo returns a new StylistRepository instance using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoStylistRepo{
		coll: db.Collection("stylists"),
	}
}
