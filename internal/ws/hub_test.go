package ws

import (
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, 256),
		log:  zap.NewNop(),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)
	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unregister, got %d", hub.ClientCount())
	}

	// Send channel must be closed so WritePump shuts down.
	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("send channel not closed")
	}
}

func TestOrdersChangedReachesEveryClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub)
	client2 := mockClient(hub)
	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.OrdersChanged()

	for i, client := range []*Client{client1, client2} {
		select {
		case msg := <-client.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("client %d: failed to unmarshal message: %v", i+1, err)
			}
			if received.Type != EventOrdersChanged {
				t.Errorf("client %d: expected type %q, got %q", i+1, EventOrdersChanged, received.Type)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %d did not receive the event", i+1)
		}
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{hub: hub, send: make(chan []byte), log: zap.NewNop()} // unbuffered, never drained
	hub.register <- slow
	time.Sleep(10 * time.Millisecond)

	hub.OrdersChanged()
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatalf("expected slow client to be dropped, still have %d clients", hub.ClientCount())
	}
}
