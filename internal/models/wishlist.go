package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Wishlist struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
	Products  []primitive.ObjectID `bson:"products" json:"products"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`

	ProductDetails []Product `bson:"-" json:"productDetails,omitempty"`
}
