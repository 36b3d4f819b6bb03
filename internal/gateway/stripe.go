package gateway

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"go-storefront/internal/model"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const requestTimeout = 10 * time.Second

// StripeGateway talks to Stripe over its official SDK.
type StripeGateway struct {
	api    *client.API
	domain string
}

func NewStripeGateway(apiKey, domain string) *StripeGateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: requestTimeout},
	})
	api := client.New(apiKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &StripeGateway{api: api, domain: domain}
}

func (g *StripeGateway) SyncProduct(ctx context.Context, p *model.Product) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := &stripe.ProductParams{
		Params:      stripe.Params{Context: ctx},
		Name:        stripe.String(p.Name),
		Description: stripe.String(p.Description),
		Active:      stripe.Bool(p.InStock()),
	}
	if _, err := g.api.Products.New(params); err != nil {
		return fmt.Errorf("%w: product sync: %v", ErrUnavailable, err)
	}
	return nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p *model.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.domain + "/success.html"),
		CancelURL:  stripe.String(g.domain + "/cancel.html"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(int64(p.Quantity)),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(priceCents(p.Price)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.Name),
						Description: stripe.String(p.Description),
					},
				},
			},
		},
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: checkout session: %v", ErrUnavailable, err)
	}
	return sess.URL, nil
}

func priceCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
