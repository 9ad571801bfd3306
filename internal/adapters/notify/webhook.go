// Package notify delivers low-stock alerts to the stock alerting webhook.
// The underlying httpclient.Client provides circuit breaking, retry with
// exponential backoff, rate limiting, and OpenTelemetry tracing; its
// breaker state feeds the readiness probe via ports.HealthChecker.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/platform/httpclient"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// alertPath is the webhook endpoint relative to the client's base URL.
const alertPath = "/alerts/low-stock"

// Compile-time interface check.
var _ ports.StockAlertNotifier = (*WebhookNotifier)(nil)

// WebhookNotifier implements ports.StockAlertNotifier by POSTing a JSON
// payload to the configured webhook. Delivery is best effort: callers are
// expected to log failures rather than fail the business operation.
type WebhookNotifier struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewWebhookNotifier creates a WebhookNotifier sending through the given
// instrumented client. The client's BaseURL should point at the alerting
// service root.
func NewWebhookNotifier(client *httpclient.Client, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		client: client,
		logger: logger,
	}
}

type lowStockAlert struct {
	SentAt   time.Time         `json:"sent_at"`
	Products []lowStockProduct `json:"products"`
}

type lowStockProduct struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}

// NotifyLowStock sends one alert covering all of the given products.
func (n *WebhookNotifier) NotifyLowStock(ctx context.Context, products []catalog.Product) error {
	payload := lowStockAlert{
		SentAt:   time.Now().UTC(),
		Products: make([]lowStockProduct, 0, len(products)),
	}
	for _, p := range products {
		payload.Products = append(payload.Products, lowStockProduct{
			ID:            p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			MinStockLevel: p.MinStockLevel,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling low-stock alert: %w", err)
	}

	url := n.client.BaseURL() + alertPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(ctx, req)
	if resp != nil {
		defer n.closeBody(ctx, resp)
	}
	if err != nil {
		return fmt.Errorf("POST %s: %w", alertPath, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("alert webhook returned %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	return nil
}

func (n *WebhookNotifier) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		n.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
