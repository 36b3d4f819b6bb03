package service

import (
	"context"
	"errors"
	"log"

	"go-storefront/internal/gateway"
	"go-storefront/internal/repository"
)

// ErrCheckoutFailed is what customers see when the payment processor is
// unreachable or rejects the request. The real cause is logged.
var ErrCheckoutFailed = errors.New("checkout could not be started")

type CheckoutService interface {
	CreateSession(ctx context.Context, productID uint) (string, error)
}

type checkoutService struct {
	productRepo repository.ProductRepository
	gateway     gateway.PaymentGateway
}

func NewCheckoutService(productRepo repository.ProductRepository, gw gateway.PaymentGateway) CheckoutService {
	return &checkoutService{productRepo: productRepo, gateway: gw}
}

// CreateSession syncs the product with the processor (inactive when out
// of stock) and requests a checkout session at the current quantity.
// A quantity of zero still attempts the session; the processor decides.
func (s *checkoutService) CreateSession(ctx context.Context, productID uint) (string, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrProductNotFound
		}
		return "", err
	}

	if err := s.gateway.SyncProduct(ctx, product); err != nil {
		log.Printf("checkout: product sync failed for product %d: %v", product.ID, err)
		return "", ErrCheckoutFailed
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, product)
	if err != nil {
		log.Printf("checkout: session create failed for product %d: %v", product.ID, err)
		return "", ErrCheckoutFailed
	}
	return url, nil
}
