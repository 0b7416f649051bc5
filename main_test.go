package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialposts/internal/events"
)

func TestAuditEvent_LogsDecodedEvent(t *testing.T) {
	var buf bytes.Buffer
	handle := auditEvent(zerolog.New(&buf))

	evt, err := events.New(events.PostCreated, map[string]interface{}{"postId": 3})
	require.NoError(t, err)
	body, err := json.Marshal(evt)
	require.NoError(t, err)

	require.NoError(t, handle(amqp.Delivery{Body: body, DeliveryTag: 1}))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, evt.ID, line["event_id"])
	assert.Equal(t, events.PostCreated, line["event"])
	assert.Equal(t, map[string]interface{}{"postId": float64(3)}, line["data"])
}

func TestAuditEvent_DropsMalformedMessage(t *testing.T) {
	var buf bytes.Buffer
	handle := auditEvent(zerolog.New(&buf))

	// A nil error acks the delivery, so it is not requeued.
	require.NoError(t, handle(amqp.Delivery{Body: []byte("not json"), DeliveryTag: 9}))
	assert.Contains(t, buf.String(), "dropping malformed event")
	assert.Contains(t, buf.String(), `"delivery_tag":9`)
}
