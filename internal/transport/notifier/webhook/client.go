package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/fsdevblog/campustrade/internal/domain"
)

const deliveryIDHeader = "X-Delivery-Id"

type payload struct {
	DeliveryID string    `json:"delivery_id"`
	UserID     int64     `json:"user_id"`
	TradeID    *int64    `json:"trade_id,omitempty"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// Client отправляет уведомления POST запросом на настроенный вебхук. Каждая отправка
// несет уникальный delivery id — приемник может дедуплицировать повторные доставки.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string) *Client {
	return &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Send(ctx context.Context, n domain.Notification) error {
	deliveryID := uuid.NewString()

	body, marshalErr := json.Marshal(payload{
		DeliveryID: deliveryID,
		UserID:     n.UserID,
		TradeID:    n.TradeID,
		Kind:       n.Kind,
		Title:      n.Title,
		Body:       n.Body,
		CreatedAt:  n.CreatedAt,
	})
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal webhook payload")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if reqErr != nil {
		return errors.Wrap(reqErr, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(deliveryIDHeader, deliveryID)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}
