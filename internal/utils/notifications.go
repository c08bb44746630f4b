package utils

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusMessage maps a status transition to the customer-facing message.
// Branches are evaluated in priority order; the delivered branch only fires
// when the order leaves a pending return/replacement state (the seller turned
// the request down by re-marking the order delivered).
func OrderStatusMessage(newStatus, oldStatus, rejectionNotes string) string {
	switch {
	case newStatus == models.OrderRejected:
		if rejectionNotes != "" {
			return "Your order has been rejected. Reason: " + rejectionNotes
		}
		return "Your order has been rejected."
	case newStatus == models.OrderProcessing:
		return "Your order has been approved and is now being processed."
	case newStatus == models.OrderReturnApproved:
		return "Your return request has been approved."
	case newStatus == models.OrderReplacementApproved:
		return "Your replacement request has been approved."
	case newStatus == models.OrderReturnRejected:
		return "Your return request has been rejected."
	case newStatus == models.OrderReplacementRejected:
		return "Your replacement request has been rejected."
	case newStatus == models.OrderDelivered &&
		(oldStatus == models.OrderPendingReturn || oldStatus == models.OrderPendingReplacement):
		return "Your return/replacement request has been rejected."
	default:
		return fmt.Sprintf("Your order status has been updated to %s.", newStatus)
	}
}

// CreateNotification appends one row to the recipient's feed. Only the read
// flag ever mutates afterwards.
func CreateNotification(ctx context.Context, user primitive.ObjectID, title, message, ntype string) error {
	notification := models.Notification{
		User:      user,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Read:      false,
		CreatedAt: time.Now(),
	}

	_, err := database.Collection(database.ColNotifications).InsertOne(ctx, notification)
	if err != nil {
		log.Println("❌ Notification insert failed:", err)
	}
	return err
}

// Capitalize upper-cases the first rune ("return" → "Return").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
