package ports

import "context"

// PaymentGateway abstracts the external card-payment provider.
type PaymentGateway interface {
	// CreatePaymentIntent registers an intended charge with the provider
	// and returns its client secret for the frontend to confirm.
	// amount is in the currency's minor units (e.g. cents).
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}
