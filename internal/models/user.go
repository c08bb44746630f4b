package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Address is embedded into users (address book) and snapshotted into orders.
type Address struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Phone   string `bson:"phone" json:"phone" binding:"required"`
	Pincode string `bson:"pincode" json:"pincode" binding:"required"`
	Street  string `bson:"street" json:"street" binding:"required"`
	City    string `bson:"city" json:"city" binding:"required"`
	State   string `bson:"state" json:"state" binding:"required"`
	Country string `bson:"country" json:"country" binding:"required"`
}

// Equal compares every field; the order address book deduplicates on full
// structural equality.
func (a Address) Equal(b Address) bool {
	return a == b
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Role           string             `bson:"role" json:"role"`
	IsVerified     bool               `bson:"isVerified" json:"isVerified"`
	Addresses      []Address          `bson:"addresses" json:"addresses"`
	PrimaryAddress []Address          `bson:"primaryAddress" json:"primaryAddress"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
