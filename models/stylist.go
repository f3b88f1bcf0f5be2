package models

import "time"

// Stylist is a member of staff a customer may request for an appointment.
type Stylist struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// StylistSelection is the snapshot of a chosen stylist carried through a
// booking session. A nil selection means "any available stylist".
type StylistSelection struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty" json:"specialty"`
}
