// File: services/payments/stripe.go
package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/product"
	"go.uber.org/zap"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

// Registrar registers a paid service with the payment processor so checkout
// can reference stable product/price identifiers.
type Registrar interface {
	RegisterService(ctx context.Context, svc *models.Service) error
}

// StripeRegistrar creates a Stripe product and price for a service that
// collects payment. When no API key is configured it is a no-op, so local
// development never talks to Stripe.
type StripeRegistrar struct {
	Logger *zap.Logger
}

func NewStripeRegistrar(logger *zap.Logger) *StripeRegistrar {
	return &StripeRegistrar{Logger: logger}
}

func (r *StripeRegistrar) RegisterService(_ context.Context, svc *models.Service) error {
	if stripe.Key == "" {
		return nil
	}
	if !svc.CollectPayment || svc.Price <= 0 {
		return nil
	}

	prod, err := product.New(&stripe.ProductParams{
		Name:        stripe.String(svc.Name),
		Description: stripe.String(svc.Description),
	})
	if err != nil {
		return fmt.Errorf("failed to register stripe product: %w", err)
	}

	pr, err := price.New(&stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(int64(math.Round(svc.Price * 100))),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
	})
	if err != nil {
		return fmt.Errorf("failed to register stripe price: %w", err)
	}

	svc.StripeProductID = prod.ID
	svc.StripePriceID = pr.ID
	r.Logger.Info("registered service with stripe",
		zap.String("serviceId", svc.ID), zap.String("productId", prod.ID))
	return nil
}

// NoopRegistrar satisfies Registrar without side effects. Used in tests and
// when payment collection is globally disabled.
type NoopRegistrar struct{}

func (NoopRegistrar) RegisterService(context.Context, *models.Service) error { return nil }
