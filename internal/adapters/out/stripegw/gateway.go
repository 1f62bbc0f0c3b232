// Package stripegw provides the Stripe implementation of the payment
// gateway port. It creates payment intents whose client secrets the
// frontend uses to collect the card payment.
package stripegw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parceltrack/internal/pkg/errs"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Gateway talks to the Stripe payment intents API over its form-encoded
// HTTP interface.
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewGateway creates a Stripe gateway using the given API secret key.
func NewGateway(secretKey string) (*Gateway, error) {
	return newGateway(secretKey, defaultBaseURL)
}

// NewGatewayWithBaseURL creates a gateway pointed at a non-default API
// endpoint. Used for tests and Stripe-compatible sandboxes.
func NewGatewayWithBaseURL(secretKey string, baseURL string) (*Gateway, error) {
	return newGateway(secretKey, strings.TrimSuffix(baseURL, "/"))
}

func newGateway(secretKey string, baseURL string) (*Gateway, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}

	return &Gateway{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}, nil
}

// CreatePaymentIntent creates a payment intent for the amount in minor
// currency units and returns its client secret.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}
	if currency == "" {
		return "", errs.NewValueIsRequiredError("currency")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stripe API returned non-OK status: %s", resp.Status)
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", err
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("stripe API response is missing client_secret")
	}

	return intent.ClientSecret, nil
}
