package model_test

import (
	"testing"

	"cognicart/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusRefunded, true},
		{model.OrderStatusPending, model.OrderStatusShipped, false},
		{model.OrderStatusPending, model.OrderStatusDelivered, false},

		{model.OrderStatusConfirmed, model.OrderStatusProcessing, true},
		{model.OrderStatusConfirmed, model.OrderStatusShipped, true},
		{model.OrderStatusConfirmed, model.OrderStatusCancelled, true},
		{model.OrderStatusConfirmed, model.OrderStatusRefunded, true},
		{model.OrderStatusConfirmed, model.OrderStatusPending, false},

		{model.OrderStatusProcessing, model.OrderStatusShipped, true},
		{model.OrderStatusProcessing, model.OrderStatusCancelled, false},

		{model.OrderStatusShipped, model.OrderStatusDelivered, true},
		{model.OrderStatusShipped, model.OrderStatusCancelled, false},

		//終端からはどこへも進めない
		{model.OrderStatusDelivered, model.OrderStatusConfirmed, false},
		{model.OrderStatusDelivered, model.OrderStatusRefunded, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusRefunded, model.OrderStatusPending, false},
	}

	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		assert.Equal(t, c.want, got, "%s -> %s", c.from, c.to)
	}
}

func TestOrderStatus_SelfTransitionRejected(t *testing.T) {
	all := []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
		model.OrderStatusRefunded,
	}
	for _, s := range all {
		assert.False(t, s.CanTransitionTo(s), "%s -> %s", s, s)
	}
}
