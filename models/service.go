package models

import "time"

// Service is a bookable salon service from the catalog.
type Service struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Price     int       `bson:"price" json:"price"`       // whole currency units
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
