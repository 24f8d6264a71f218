package broker

import (
	"sync"

	"budgefy/internal/entity"
)

type EventType string

const (
	EventExpenseCreated EventType = "expense_created"
	EventExpenseUpdated EventType = "expense_updated"
	EventExpenseDeleted EventType = "expense_deleted"
)

type ExpenseEvent struct {
	Type    EventType      `json:"type"`
	Expense entity.Expense `json:"expense"`
}

// IBroker fans expense change events out to per-owner subscribers so
// clients can recompute their views when the record set changes. The
// broker is in-process only; a subscriber that falls behind has events
// dropped rather than blocking publishers.
type IBroker interface {
	Subscribe(ownerID string) (<-chan ExpenseEvent, func())
	Publish(ownerID string, event ExpenseEvent)
}

type brokerImpl struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[string]map[int]chan ExpenseEvent
}

const subscriberBuffer = 16

func New() IBroker {
	return &brokerImpl{
		subscribers: make(map[string]map[int]chan ExpenseEvent),
	}
}

func (b *brokerImpl) Subscribe(ownerID string) (<-chan ExpenseEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[ownerID] == nil {
		b.subscribers[ownerID] = make(map[int]chan ExpenseEvent)
	}

	id := b.nextID
	b.nextID++

	ch := make(chan ExpenseEvent, subscriberBuffer)
	b.subscribers[ownerID][id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if subs, ok := b.subscribers[ownerID]; ok {
			if sub, ok := subs[id]; ok {
				delete(subs, id)
				close(sub)
			}
			if len(subs) == 0 {
				delete(b.subscribers, ownerID)
			}
		}
	}

	return ch, unsubscribe
}

func (b *brokerImpl) Publish(ownerID string, event ExpenseEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[ownerID] {
		select {
		case ch <- event:
		default:
		}
	}
}
