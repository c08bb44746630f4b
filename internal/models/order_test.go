package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, Price: 9.99},
		{Quantity: 1, Price: 49.50},
		{Quantity: 3, Price: 0.50},
	}
	assert.InDelta(t, 70.98, OrderTotal(items), 1e-9)
	assert.Zero(t, OrderTotal(nil))
}

func TestValidOrderStatus(t *testing.T) {
	valid := []string{
		OrderCancelled, OrderPending, OrderProcessing, OrderShipped,
		OrderDelivered, OrderPendingReturn, OrderPendingReplacement,
		OrderRejected, OrderReturnApproved, OrderReplacementApproved,
		OrderReturnRejected, OrderReplacementRejected,
	}
	for _, s := range valid {
		assert.True(t, ValidOrderStatus(s), s)
	}

	assert.False(t, ValidOrderStatus("Pending"))
	assert.False(t, ValidOrderStatus("refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func TestContainsSellerProduct(t *testing.T) {
	seller := primitive.NewObjectID()
	other := primitive.NewObjectID()
	mine := primitive.NewObjectID()
	theirs := primitive.NewObjectID()

	productSellers := map[primitive.ObjectID]primitive.ObjectID{
		mine:   seller,
		theirs: other,
	}

	order := Order{Items: []OrderItem{{Product: theirs}, {Product: mine}}}
	assert.True(t, order.ContainsSellerProduct(seller, productSellers))

	foreign := Order{Items: []OrderItem{{Product: theirs}}}
	assert.False(t, foreign.ContainsSellerProduct(seller, productSellers))

	unknown := Order{Items: []OrderItem{{Product: primitive.NewObjectID()}}}
	assert.False(t, unknown.ContainsSellerProduct(seller, productSellers))
}
