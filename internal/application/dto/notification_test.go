package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPayload_WireRoundTrip(t *testing.T) {
	payload := PushPayload{
		Title: "✈️ Aperture Studio in 7 days",
		Body:  "Have you booked your flight yet?",
		URL:   "/spots/42",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded PushPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestPushPayload_WireFieldNames(t *testing.T) {
	// The service worker reads exactly title/body/url.
	data, err := json.Marshal(PushPayload{Title: "t", Body: "b", URL: "/u"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","body":"b","url":"/u"}`, string(data))
}

func TestReminderRunReport_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(ReminderRunReport{Sent: 2, Failed: 1, Total: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sent":2,"failed":1,"total":3}`, string(data))
}
