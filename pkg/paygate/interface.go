// Package paygate defines interfaces and data types used to create and settle
// payment intents with a backing payment provider.
package paygate

import (
	"context"

	"github.com/shopspring/decimal"
)

// Intent represents a payment intent held by the provider. Funds are
// authorized when the intent is confirmed by the buyer and captured only after
// the verification is delivered.
type Intent struct {
	ID           string          // ID is the intent identifier returned by the provider.
	ClientSecret string          // ClientSecret is handed to the buyer's client to confirm the intent.
	Amount       decimal.Decimal // Amount is the total charge in the intent's currency.
	Currency     string          // Currency is the ISO 4217 currency code.
}

// CreateIntentReq carries the parameters for creating a new payment intent.
type CreateIntentReq struct {
	Amount    decimal.Decimal
	Currency  string
	Reference string // Reference ties the intent back to a verification job.
}

// Client is the abstraction for payment providers. Implementations create
// intents with manual capture and later capture or cancel them.
//
//go:generate mockgen -package mockpaygate -source=interface.go -destination=mock/mockpaygate.go *
type Client interface {
	// CreateIntent creates a manual-capture payment intent for the given
	// amount and returns the provider's intent descriptor.
	CreateIntent(ctx context.Context, req CreateIntentReq) (Intent, error)
	// CaptureIntent captures the previously authorized funds of an intent.
	CaptureIntent(ctx context.Context, intentID string) error
	// CancelIntent releases the authorization hold of an intent.
	CancelIntent(ctx context.Context, intentID string) error
}
