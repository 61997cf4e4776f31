package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending_to_accepted", OrderStatusPending, OrderStatusAccepted, true},
		{"pending_to_rejected", OrderStatusPending, OrderStatusRejected, true},
		{"pending_to_ready", OrderStatusPending, OrderStatusReady, false},
		{"pending_to_completed", OrderStatusPending, OrderStatusCompleted, false},
		{"pending_to_pending", OrderStatusPending, OrderStatusPending, false},
		{"accepted_to_ready", OrderStatusAccepted, OrderStatusReady, true},
		{"accepted_to_completed", OrderStatusAccepted, OrderStatusCompleted, false},
		{"accepted_to_rejected", OrderStatusAccepted, OrderStatusRejected, false},
		{"ready_to_completed", OrderStatusReady, OrderStatusCompleted, true},
		{"ready_to_accepted", OrderStatusReady, OrderStatusAccepted, false},
		{"rejected_is_terminal", OrderStatusRejected, OrderStatusAccepted, false},
		{"completed_to_pending", OrderStatusCompleted, OrderStatusPending, false},
		{"completed_to_ready", OrderStatusCompleted, OrderStatusReady, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransitionTo(testCase.to))
		})
	}
}

func TestOrderStatus_FullLifecycle(t *testing.T) {
	status := OrderStatusPending

	for _, next := range []OrderStatus{OrderStatusAccepted, OrderStatusReady, OrderStatusCompleted} {
		assert.True(t, status.CanTransitionTo(next))
		status = next
	}
	assert.True(t, status.IsTerminal())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusRejected.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusAccepted.IsTerminal())
	assert.False(t, OrderStatusReady.IsTerminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusReady.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}
