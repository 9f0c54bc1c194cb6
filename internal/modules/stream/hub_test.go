package stream

import (
	"encoding/json"
	"testing"

	"hotleads/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEventShape(t *testing.T) {
	data, err := encodeEvent(CollectionSettings, domain.DefaultSettings())
	require.NoError(t, err)

	var ev struct {
		Type       string          `json:"type"`
		Collection string          `json:"collection"`
		Payload    json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, EventSnapshot, ev.Type)
	assert.Equal(t, CollectionSettings, ev.Collection)

	var s domain.Settings
	require.NoError(t, json.Unmarshal(ev.Payload, &s))
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestPublishWithNoSubscribersIsSafe(t *testing.T) {
	h := NewHub()
	h.PublishLeads(1, nil)
	h.PublishGoals(1, nil)
	h.PublishSettings(1, domain.DefaultSettings())
}

func TestPublishFansOutToUserConnections(t *testing.T) {
	h := NewHub()

	c1 := &connection{userID: 1, send: make(chan []byte, 4)}
	c2 := &connection{userID: 1, send: make(chan []byte, 4)}
	other := &connection{userID: 2, send: make(chan []byte, 4)}
	h.register(c1)
	h.register(c2)
	h.register(other)

	h.PublishLeads(1, []domain.Lead{{ID: "abc", FullName: "Maria"}})

	assert.Len(t, c1.send, 1)
	assert.Len(t, c2.send, 1)
	assert.Len(t, other.send, 0)

	var ev Event
	require.NoError(t, json.Unmarshal(<-c1.send, &ev))
	assert.Equal(t, CollectionLeads, ev.Collection)
}

func TestPublishDropsFrameForSlowClient(t *testing.T) {
	h := NewHub()

	c := &connection{userID: 1, send: make(chan []byte)} // unbuffered, no reader
	h.register(c)

	// Must not block.
	h.PublishGoals(1, []domain.Goal{{ID: "g1", Month: "2024-03"}})
	assert.Len(t, c.send, 0)
}

func TestUnregisterClosesAndForgets(t *testing.T) {
	h := NewHub()

	c := &connection{userID: 1, send: make(chan []byte, 1)}
	h.register(c)
	h.unregister(c)

	_, open := <-c.send
	assert.False(t, open)

	// Double unregister is a no-op.
	h.unregister(c)

	h.PublishLeads(1, nil)
}
