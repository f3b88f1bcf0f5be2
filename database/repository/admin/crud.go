package adminRepo

import (
	"context"
	"time"

	"glamora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByEmail returns the admin account for an email address.
func (r *mongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin account and returns its ID.
func (r *mongoAdminRepo) Create(ctx context.Context, admin *models.Admin) (string, error) {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return "", err
	}
	return admin.ID, nil
}

// GetAll fetches registered site accounts, newest first.
func (r *mongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
