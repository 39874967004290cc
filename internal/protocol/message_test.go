package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageWrapsPayload(t *testing.T) {
	raw, err := NewMessage("round_start", RoundStartPayload{Round: 3})
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "round_start", msg.Type)

	var payload RoundStartPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, 3, payload.Round)
}

func TestNewMessageWithNilPayload(t *testing.T) {
	raw, err := NewMessage("ping", nil)
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "ping", msg.Type)
	assert.Empty(t, msg.Payload)
}
