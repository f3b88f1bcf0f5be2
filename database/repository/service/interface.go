package serviceRepo

import (
	"context"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository manages the salon service catalog. The booking core only
// reads it; admin endpoints mutate it.
type ServiceRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (string, error)
	Update(ctx context.Context, service *models.Service) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a new ServiceRepository instance using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
