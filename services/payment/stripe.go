package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// CheckoutClient abstracts the Stripe checkout session API so the service
// can be exercised without the live gateway.
type CheckoutClient interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string) (*stripe.CheckoutSession, error)
}

// StripeCheckoutClient is the production CheckoutClient backed by the
// package-level Stripe key.
type StripeCheckoutClient struct{}

func (StripeCheckoutClient) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (StripeCheckoutClient) GetSession(id string) (*stripe.CheckoutSession, error) {
	return session.Get(id, nil)
}
