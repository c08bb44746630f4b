package utils

import (
	"testing"

	"quickcart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusMessage(t *testing.T) {
	tests := []struct {
		name           string
		newStatus      string
		oldStatus      string
		rejectionNotes string
		want           string
	}{
		{
			name:      "rejected without notes",
			newStatus: models.OrderRejected,
			oldStatus: models.OrderPending,
			want:      "Your order has been rejected.",
		},
		{
			name:           "rejected with notes",
			newStatus:      models.OrderRejected,
			oldStatus:      models.OrderPending,
			rejectionNotes: "Out of stock",
			want:           "Your order has been rejected. Reason: Out of stock",
		},
		{
			name:      "processing",
			newStatus: models.OrderProcessing,
			oldStatus: models.OrderPending,
			want:      "Your order has been approved and is now being processed.",
		},
		{
			name:      "return approved",
			newStatus: models.OrderReturnApproved,
			oldStatus: models.OrderPendingReturn,
			want:      "Your return request has been approved.",
		},
		{
			name:      "replacement approved",
			newStatus: models.OrderReplacementApproved,
			oldStatus: models.OrderPendingReplacement,
			want:      "Your replacement request has been approved.",
		},
		{
			name:      "return rejected",
			newStatus: models.OrderReturnRejected,
			oldStatus: models.OrderPendingReturn,
			want:      "Your return request has been rejected.",
		},
		{
			name:      "replacement rejected",
			newStatus: models.OrderReplacementRejected,
			oldStatus: models.OrderPendingReplacement,
			want:      "Your replacement request has been rejected.",
		},
		{
			name:      "delivered after pending return",
			newStatus: models.OrderDelivered,
			oldStatus: models.OrderPendingReturn,
			want:      "Your return/replacement request has been rejected.",
		},
		{
			name:      "delivered after pending replacement",
			newStatus: models.OrderDelivered,
			oldStatus: models.OrderPendingReplacement,
			want:      "Your return/replacement request has been rejected.",
		},
		{
			name:      "delivered normally",
			newStatus: models.OrderDelivered,
			oldStatus: models.OrderShipped,
			want:      "Your order status has been updated to delivered.",
		},
		{
			name:      "generic transition",
			newStatus: models.OrderShipped,
			oldStatus: models.OrderProcessing,
			want:      "Your order status has been updated to shipped.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderStatusMessage(tt.newStatus, tt.oldStatus, tt.rejectionNotes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Return", Capitalize("return"))
	assert.Equal(t, "Replacement", Capitalize("replacement"))
	assert.Equal(t, "Approved", Capitalize("approved"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "X", Capitalize("x"))
}
