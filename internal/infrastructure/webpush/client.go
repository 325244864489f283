package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/pkg/config"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"
	"sync"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Default TTL for queued notifications at the push service (one day).
const notificationTTL = 86400

// Client delivers encrypted Web Push payloads using VAPID authentication.
type Client struct {
	subject    string
	publicKey  string
	privateKey string
	httpClient *http.Client
	log        logger.Logger
}

var (
	clientInstance *Client
	once           sync.Once
)

// NewClient creates a new singleton instance of the Web Push client.
// Missing VAPID credentials are fatal, delivery is impossible without them.
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	once.Do(func() {
		if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
			log.Error("VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY environment variables must be set", nil)
			os.Exit(1)
		}

		clientInstance = &Client{
			subject:    cfg.VAPIDSubject,
			publicKey:  cfg.VAPIDPublicKey,
			privateKey: cfg.VAPIDPrivateKey,
			httpClient: &http.Client{Timeout: cfg.PushTimeout},
			log:        log,
		}
		log.Info("Web Push client initialized.")
	})
	return clientInstance
}

// Send encrypts and delivers one payload to the subscription's endpoint.
// A non-2xx status from the push service is treated as a delivery failure.
func (c *Client) Send(ctx context.Context, sub *entity.PushSubscription, payload dto.PushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", appErrors.ErrPushDelivery, err)
	}

	subscription := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, subscription, &webpush.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      c.subject,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             notificationTTL,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrPushDelivery, err)
	}
	defer resp.Body.Close()

	// Expired or revoked subscriptions surface as 404/410 here.
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: endpoint returned status %d", appErrors.ErrPushDelivery, resp.StatusCode)
	}

	c.log.Debug(fmt.Sprintf("Delivered push notification to user %s", sub.UserID))
	return nil
}
