package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	eventReceived := make(chan BalanceChangeEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		defer wg.Done()
		if balanceEvent, ok := event.(BalanceChangeEvent); ok {
			select {
			case eventReceived <- balanceEvent:
			case <-time.After(1 * time.Second):
				t.Error("Timeout sending event to channel")
			}
		} else {
			t.Errorf("Expected BalanceChangeEvent, got %T", event)
		}
	})

	testEvent := BalanceChangeEvent{
		UserID:     123456,
		Delta:      500,
		NewBalance: 1500,
	}

	bus.Emit(context.Background(), testEvent)
	wg.Wait()

	received := <-eventReceived
	assert.Equal(t, testEvent, received)
}

func TestBus_UnsubscribedTypeIsIgnored(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeGuildProvisioned, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(context.Background(), BalanceChangeEvent{UserID: 1, Delta: 1, NewBalance: 1})

	select {
	case <-called:
		t.Fatal("handler for another event type was called")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		panic("handler exploded")
	})
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Emit(context.Background(), BalanceChangeEvent{UserID: 2, Delta: -5, NewBalance: 95})
	wg.Wait()
}
