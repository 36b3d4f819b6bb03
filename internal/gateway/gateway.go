package gateway

import (
	"context"
	"errors"

	"go-storefront/internal/model"
)

// ErrUnavailable wraps every failure talking to the payment processor.
// Upstream error text stays server-side; callers log it and show the
// customer a generic message.
var ErrUnavailable = errors.New("payment gateway unavailable")

// PaymentGateway is the storefront's view of the payment processor.
type PaymentGateway interface {
	// SyncProduct registers or refreshes the product with the processor.
	// Out-of-stock products are synced as inactive.
	SyncProduct(ctx context.Context, p *model.Product) error

	// CreateCheckoutSession starts a payment-mode checkout for the
	// product at its current quantity and returns the hosted URL the
	// customer should be redirected to.
	CreateCheckoutSession(ctx context.Context, p *model.Product) (string, error)
}
