package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in its product document.
type Review struct {
	User     primitive.ObjectID `bson:"user" json:"user"`
	Rating   int                `bson:"rating" json:"rating"`
	Comment  string             `bson:"comment" json:"comment"`
	UserName string             `bson:"-" json:"userName,omitempty"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Currency      string             `bson:"currency" json:"currency"`
	Category      string             `bson:"category" json:"category"`
	Stock         int                `bson:"stock" json:"stock"`
	Seller        primitive.ObjectID `bson:"seller" json:"seller"`
	SellerType    string             `bson:"sellerType" json:"sellerType"`
	Images        []string           `bson:"images" json:"images"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	Deleted       bool               `bson:"deleted" json:"deleted"`
}

// AverageRatingOf recomputes the mean rating over a review set.
func AverageRatingOf(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
