package routing_test

import (
	"testing"
	"time"

	"github.com/harborlight/harborlight/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]any {
	return map[string]any{
		"signalId":        "signal-1",
		"childAge":        14,
		"timestamp":       time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		"familyStructure": "two_parent",
		"jurisdiction":    "US-CA",
		"platform":        "android",
		"triggerMethod":   "on_device_classifier",
		"deviceId":        "d41d8cd98f00b204",
	}
}

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	t.Run("Builds from the full allow-list", func(t *testing.T) {
		t.Parallel()

		payload, err := routing.BuildPayload(validFields())
		require.NoError(t, err)

		assert.Equal(t, "signal-1", payload.SignalID)
		assert.Equal(t, 14, payload.ChildAge)
		assert.Equal(t, "US-CA", payload.Jurisdiction)
		assert.Equal(t, "d41d8cd98f00b204", payload.DeviceID)
	})

	t.Run("Rejects any field outside the allow-list", func(t *testing.T) {
		t.Parallel()

		for _, field := range []string{"childName", "birthDate", "screenshotUrl", "parentEmail", "browsingHistory"} {
			fields := validFields()
			fields[field] = "leak"

			_, err := routing.BuildPayload(fields)
			assert.ErrorIs(t, err, routing.ErrUnknownPayloadField, field)
		}
	})

	t.Run("Requires signal id, age, timestamp and jurisdiction", func(t *testing.T) {
		t.Parallel()

		for _, field := range []string{"signalId", "childAge", "timestamp", "jurisdiction"} {
			fields := validFields()
			delete(fields, field)

			_, err := routing.BuildPayload(fields)
			assert.ErrorIs(t, err, routing.ErrMissingPayloadField, field)
		}
	})

	t.Run("Optional context fields may be absent", func(t *testing.T) {
		t.Parallel()

		fields := validFields()
		delete(fields, "familyStructure")
		delete(fields, "platform")
		delete(fields, "triggerMethod")
		delete(fields, "deviceId")

		payload, err := routing.BuildPayload(fields)
		require.NoError(t, err)
		assert.Empty(t, payload.DeviceID)
	})

	t.Run("Validates jurisdiction format", func(t *testing.T) {
		t.Parallel()

		for _, jurisdiction := range []string{"", "us", "USA", "US_CA", "US-ca", "California"} {
			fields := validFields()
			fields["jurisdiction"] = jurisdiction

			_, err := routing.BuildPayload(fields)
			assert.ErrorIs(t, err, routing.ErrInvalidJurisdiction, jurisdiction)
		}
	})

	t.Run("Validates child age range", func(t *testing.T) {
		t.Parallel()

		for _, age := range []int{0, -1, 18, 40} {
			fields := validFields()
			fields["childAge"] = age

			_, err := routing.BuildPayload(fields)
			assert.ErrorIs(t, err, routing.ErrInvalidChildAge)
		}
	})
}
