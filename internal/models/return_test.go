package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinReturnWindow(t *testing.T) {
	now := time.Now()

	assert.True(t, WithinReturnWindow(now.Add(-time.Hour), now))
	assert.True(t, WithinReturnWindow(now.Add(-ReturnWindow), now))
	assert.False(t, WithinReturnWindow(now.Add(-ReturnWindow-time.Second), now))
	assert.False(t, WithinReturnWindow(now.Add(-30*24*time.Hour), now))
}

func TestValidReturnType(t *testing.T) {
	assert.True(t, ValidReturnType(ReturnTypeReturn))
	assert.True(t, ValidReturnType(ReturnTypeReplacement))
	assert.False(t, ValidReturnType("refund"))
	assert.False(t, ValidReturnType(""))
}

func TestPendingOrderStatus(t *testing.T) {
	assert.Equal(t, OrderPendingReturn, PendingOrderStatus(ReturnTypeReturn))
	assert.Equal(t, OrderPendingReplacement, PendingOrderStatus(ReturnTypeReplacement))
}

func TestResolvedOrderStatus(t *testing.T) {
	assert.Equal(t, OrderReturnApproved, ResolvedOrderStatus(ReturnTypeReturn, ReturnApproved))
	assert.Equal(t, OrderReturnRejected, ResolvedOrderStatus(ReturnTypeReturn, ReturnRejected))
	assert.Equal(t, OrderReplacementApproved, ResolvedOrderStatus(ReturnTypeReplacement, ReturnApproved))
	assert.Equal(t, OrderReplacementRejected, ResolvedOrderStatus(ReturnTypeReplacement, ReturnRejected))

	// completed leaves the parent order untouched
	assert.Empty(t, ResolvedOrderStatus(ReturnTypeReturn, ReturnCompleted))
	assert.Empty(t, ResolvedOrderStatus(ReturnTypeReplacement, ReturnPending))
}
