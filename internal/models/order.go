package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status vocabulary. The storefront branches on these literal values,
// so they are part of the external contract.
const (
	OrderCancelled           = "cancelled"
	OrderPending             = "pending"
	OrderProcessing          = "processing"
	OrderShipped             = "shipped"
	OrderDelivered           = "delivered"
	OrderPendingReturn       = "pending return"
	OrderPendingReplacement  = "pending replacement"
	OrderRejected            = "rejected"
	OrderReturnApproved      = "return approved"
	OrderReplacementApproved = "replacement approved"
	OrderReturnRejected      = "return rejected"
	OrderReplacementRejected = "replacement rejected"
)

var orderStatuses = map[string]bool{
	OrderCancelled:           true,
	OrderPending:             true,
	OrderProcessing:          true,
	OrderShipped:             true,
	OrderDelivered:           true,
	OrderPendingReturn:       true,
	OrderPendingReplacement:  true,
	OrderRejected:            true,
	OrderReturnApproved:      true,
	OrderReplacementApproved: true,
	OrderReturnRejected:      true,
	OrderReplacementRejected: true,
}

// ValidOrderStatus reports membership of the closed status set. No legality
// graph is enforced beyond this: any authorized actor may set any member on
// any current state.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// OrderItem snapshots the unit price at purchase time; later catalog price
// changes never touch it.
type OrderItem struct {
	Product     primitive.ObjectID `bson:"product" json:"product"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	ProductName string             `bson:"-" json:"productName,omitempty"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Items          []OrderItem        `bson:"items" json:"items"`
	Total          float64            `bson:"total" json:"total"`
	Status         string             `bson:"status" json:"status"`
	RejectionNotes string             `bson:"rejectionNotes" json:"rejectionNotes"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	Address        Address            `bson:"address" json:"address"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`

	UserName  string `bson:"-" json:"userName,omitempty"`
	UserEmail string `bson:"-" json:"userEmail,omitempty"`
}

// OrderTotal sums quantity × snapshotted unit price.
func OrderTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// ContainsSellerProduct reports whether at least one order line references a
// product of the given seller; seller write access to an order hangs on it.
func (o Order) ContainsSellerProduct(sellerID primitive.ObjectID, productSellers map[primitive.ObjectID]primitive.ObjectID) bool {
	for _, item := range o.Items {
		if seller, ok := productSellers[item.Product]; ok && seller == sellerID {
			return true
		}
	}
	return false
}
