package serviceRepo

import (
	"context"
	"errors"
	"time"

	"glamora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll fetches catalog services, sorted by category then name. When
// activeOnly is set, disabled services are excluded.
func (r *mongoServiceRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns a catalog service by its ID.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Create inserts a new catalog service and returns its ID.
func (r *mongoServiceRepo) Create(ctx context.Context, service *models.Service) (string, error) {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return "", err
	}
	return service.ID, nil
}

// Update replaces the mutable fields of a catalog service.
func (r *mongoServiceRepo) Update(ctx context.Context, service *models.Service) error {
	service.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": service.ID}, bson.M{
		"$set": bson.M{
			"name":       service.Name,
			"category":   service.Category,
			"price":      service.Price,
			"duration":   service.Duration,
			"active":     service.Active,
			"updated_at": service.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}

// DeleteByID removes a catalog service by ID.
func (r *mongoServiceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}
