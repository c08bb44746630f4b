package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReturnTypeReturn      = "return"
	ReturnTypeReplacement = "replacement"

	ReturnPending   = "pending"
	ReturnApproved  = "approved"
	ReturnRejected  = "rejected"
	ReturnCompleted = "completed"
)

// ReturnWindow is measured from order creation, not delivery.
const ReturnWindow = 7 * 24 * time.Hour

type Return struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order        primitive.ObjectID `bson:"order" json:"order"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Product      primitive.ObjectID `bson:"product" json:"product"`
	Seller       primitive.ObjectID `bson:"seller" json:"seller"`
	Reason       string             `bson:"reason" json:"reason"`
	Type         string             `bson:"type" json:"type"`
	Status       string             `bson:"status" json:"status"`
	RequestDate  time.Time          `bson:"requestDate" json:"requestDate"`
	ResponseDate *time.Time         `bson:"responseDate,omitempty" json:"responseDate,omitempty"`
	AdminNotes   string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`

	ProductName string `bson:"-" json:"productName,omitempty"`
	UserName    string `bson:"-" json:"userName,omitempty"`
	UserEmail   string `bson:"-" json:"userEmail,omitempty"`
}

func ValidReturnType(t string) bool {
	return t == ReturnTypeReturn || t == ReturnTypeReplacement
}

// WithinReturnWindow reports whether a return may still be opened for an
// order created at the given time.
func WithinReturnWindow(orderCreatedAt, now time.Time) bool {
	return now.Sub(orderCreatedAt) <= ReturnWindow
}

// PendingOrderStatus is the order status set when a request of the given
// type is opened: "pending return" or "pending replacement".
func PendingOrderStatus(returnType string) string {
	return "pending " + returnType
}

// ResolvedOrderStatus maps a resolution onto the parent order's status:
// approved → "{type} approved", rejected → "{type} rejected". Any other
// resolution leaves the order untouched and returns "".
func ResolvedOrderStatus(returnType, resolution string) string {
	switch resolution {
	case ReturnApproved:
		return returnType + " approved"
	case ReturnRejected:
		return returnType + " rejected"
	}
	return ""
}
