package stylistRepo

import (
	"context"
	"errors"
	"time"

	"glamora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll fetches stylists sorted by name. When activeOnly is set, inactive
// staff are excluded.
func (r *mongoStylistRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.Stylist, error) {
	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

// GetByID returns a stylist by ID.
func (r *mongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	var stylist models.Stylist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist)
	if err != nil {
		return nil, err
	}
	return &stylist, nil
}

// Create inserts a new stylist and returns their ID.
func (r *mongoStylistRepo) Create(ctx context.Context, stylist *models.Stylist) (string, error) {
	if stylist.ID == "" {
		stylist.ID = uuid.New().String()
	}
	now := time.Now()
	stylist.CreatedAt = now
	stylist.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, stylist)
	if err != nil {
		return "", err
	}
	return stylist.ID, nil
}

// Update replaces the mutable fields of a stylist.
func (r *mongoStylistRepo) Update(ctx context.Context, stylist *models.Stylist) error {
	stylist.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": stylist.ID}, bson.M{
		"$set": bson.M{
			"name":       stylist.Name,
			"specialty":  stylist.Specialty,
			"active":     stylist.Active,
			"updated_at": stylist.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("stylist not found")
	}
	return nil
}

// DeleteByID removes a stylist by ID.
func (r *mongoStylistRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("stylist not found")
	}
	return nil
}
