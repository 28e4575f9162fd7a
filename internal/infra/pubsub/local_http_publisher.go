package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	localPushSubscription = "projects/local/subscriptions/order-placed-fulfilment"
)

// pushEnvelope is the body Google Pub/Sub POSTs to push subscribers, so a
// fulfilment service can run against the same handler locally.
type pushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher pushes order events straight to a subscriber endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push order %s", event.OrderID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("subscriber rejected order %s with status %d", event.OrderID, resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "order event pushed",
		slog.String("order_id", event.OrderID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) envelope(event *service.OrderPlacedEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var env pushEnvelope
	env.Subscription = localPushSubscription
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = orderAttributes(event)
	env.Message.MessageID = event.OrderID
	env.Message.OrderingKey = orderingKey(event)
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(env)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
