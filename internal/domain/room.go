package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Host struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
	Email string `bson:"email" json:"email"`
}

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Location    string             `bson:"location" json:"location"`
	Title       string             `bson:"title" json:"title"`
	From        string             `bson:"from" json:"from"`
	To          string             `bson:"to" json:"to"`
	Price       float64            `bson:"price" json:"price"`
	TotalGuest  int                `bson:"total_guest" json:"total_guest"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int                `bson:"bathrooms" json:"bathrooms"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Host        Host               `bson:"host" json:"host"`
	Booked      bool               `bson:"booked" json:"booked"`
}
