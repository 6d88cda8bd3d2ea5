package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Guest struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image" json:"image"`
}

// Booking references its room by id only; there is no referential
// integrity between collections.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID        string             `bson:"roomId" json:"roomId"`
	Guest         Guest              `bson:"guest" json:"guest"`
	Title         string             `bson:"title" json:"title"`
	Location      string             `bson:"location" json:"location"`
	Image         string             `bson:"image" json:"image"`
	Price         float64            `bson:"price" json:"price"`
	From          string             `bson:"from" json:"from"`
	To            string             `bson:"to" json:"to"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
