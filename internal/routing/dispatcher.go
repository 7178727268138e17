package routing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/harborlight/harborlight/internal/database/types"
	"go.uber.org/zap"
)

// ErrWebhookRejected is returned when a partner endpoint answered with a
// non-2xx status on every attempt.
var ErrWebhookRejected = errors.New("partner webhook rejected delivery")

// Dispatcher delivers a routing payload to a single partner endpoint.
type Dispatcher interface {
	Dispatch(ctx context.Context, partner *types.CrisisPartner, payload *SignalRoutingPayload) (int, error)
}

// WebhookDispatcher posts payloads to partner webhook endpoints over HTTPS
// with bounded timeouts and exponential retry.
type WebhookDispatcher struct {
	client      *http.Client
	retryDelay  time.Duration
	maxAttempts int
	logger      *zap.Logger
}

// NewWebhookDispatcher creates a dispatcher with the given delivery timeout,
// base retry delay, and attempt cap.
func NewWebhookDispatcher(
	timeout time.Duration, retryDelay time.Duration, maxAttempts int, logger *zap.Logger,
) *WebhookDispatcher {
	return &WebhookDispatcher{
		client:      &http.Client{Timeout: timeout},
		retryDelay:  retryDelay,
		maxAttempts: maxAttempts,
		logger:      logger.Named("webhook_dispatcher"),
	}
}

// Dispatch posts the payload to the partner's webhook, retrying transient
// failures with doubling delay up to the attempt cap. It returns the number
// of attempts made. The partner API key hash travels in a header, never in
// the payload body.
func (d *WebhookDispatcher) Dispatch(
	ctx context.Context, partner *types.CrisisPartner, payload *SignalRoutingPayload,
) (int, error) {
	if !strings.HasPrefix(partner.WebhookURL, "https://") {
		return 0, types.ErrInsecureWebhookURL
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode routing payload: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = d.retryDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	attempts := 0
	operation := func() error {
		attempts++

		if err := d.post(ctx, partner, body); err != nil {
			d.logger.Warn("Webhook delivery attempt failed",
				zap.String("partnerID", partner.ID),
				zap.String("signalID", payload.SignalID),
				zap.Int("attempt", attempts),
				zap.Error(err))

			return err
		}

		return nil
	}

	err = backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(d.maxAttempts-1)), ctx))

	return attempts, err
}

func (d *WebhookDispatcher) post(ctx context.Context, partner *types.CrisisPartner, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, partner.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+partner.APIKeyHash)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrWebhookRejected, resp.StatusCode)
	}

	return nil
}
