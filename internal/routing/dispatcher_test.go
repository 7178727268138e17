package routing_test

import (
	"testing"
	"time"

	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatchRejectsInsecureWebhook(t *testing.T) {
	t.Parallel()

	dispatcher := routing.NewWebhookDispatcher(time.Second, 10*time.Millisecond, 3, zap.NewNop())

	insecure := &types.CrisisPartner{
		ID:         "plain-http",
		WebhookURL: "http://partner.example.org/hook",
	}

	attempts, err := dispatcher.Dispatch(t.Context(), insecure, routePayload(t))
	assert.ErrorIs(t, err, types.ErrInsecureWebhookURL)
	assert.Zero(t, attempts)
}
