package adminRepo

import (
	"context"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository stores dashboard accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) (string, error)
}

// UserRepository exposes registered site accounts for admin listings.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAdminRepo{
		coll: db.Collection("admins"),
	}
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
