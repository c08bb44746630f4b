package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SellerPending  = "pending"
	SellerApproved = "approved"
	SellerRejected = "rejected"
)

type Seller struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"`
	Name               string             `bson:"name" json:"name"`
	BusinessName       string             `bson:"businessName" json:"businessName"`
	PanCard            string             `bson:"panCard" json:"panCard"`
	VerificationStatus string             `bson:"verificationStatus" json:"verificationStatus"`
	IsVerified         bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
