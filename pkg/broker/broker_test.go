package broker

import (
	"testing"
	"time"

	"budgefy/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerDeliversToOwnerSubscribers(t *testing.T) {
	b := New()

	ch, unsubscribe := b.Subscribe("user-1")
	defer unsubscribe()

	b.Publish("user-1", ExpenseEvent{
		Type:    EventExpenseCreated,
		Expense: entity.Expense{ID: "exp-1", UserID: "user-1", Title: "Coffee"},
	})

	select {
	case ev := <-ch:
		assert.Equal(t, EventExpenseCreated, ev.Type)
		assert.Equal(t, "exp-1", ev.Expense.ID)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestBrokerIsolatesOwners(t *testing.T) {
	b := New()

	ch, unsubscribe := b.Subscribe("user-1")
	defer unsubscribe()

	b.Publish("user-2", ExpenseEvent{Type: EventExpenseCreated})

	select {
	case ev := <-ch:
		t.Fatalf("received event for another owner: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBrokerUnsubscribeClosesChannel(t *testing.T) {
	b := New()

	ch, unsubscribe := b.Subscribe("user-1")
	unsubscribe()

	_, open := <-ch
	require.False(t, open)

	// publishing after unsubscribe must not panic
	b.Publish("user-1", ExpenseEvent{Type: EventExpenseDeleted})
}

func TestBrokerDropsWhenSubscriberIsFull(t *testing.T) {
	b := New()

	ch, unsubscribe := b.Subscribe("user-1")
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("user-1", ExpenseEvent{Type: EventExpenseCreated})
	}

	assert.Equal(t, subscriberBuffer, len(ch))
}
