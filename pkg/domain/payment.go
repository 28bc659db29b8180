package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentID uniquely identifies a payment record.
type PaymentID uuid.UUID

// PaymentStatus mirrors the gateway's view of a payment intent. Only the
// released terminal state feeds back into the job lifecycle.
type PaymentStatus string

const (
	// PaymentStatusPending indicates an intent exists but funds are still held.
	PaymentStatusPending PaymentStatus = "PENDING"
	// PaymentStatusReleased indicates funds settled; drives the job to COMPLETED.
	PaymentStatusReleased PaymentStatus = "RELEASED"
	// PaymentStatusFailed indicates the gateway rejected or voided the intent.
	PaymentStatusFailed PaymentStatus = "FAILED"
)

// Payment tracks the money held for a job: what the buyer paid, the platform's
// cut and the scout's payout. The split comes from the job's frozen fee
// breakdown, never recomputed from the amount.
type Payment struct {
	// ID is the unique identifier of the payment record.
	ID PaymentID `json:"id"`
	// JobID references the job being paid for; one payment per job.
	JobID JobID `json:"jobId"`

	// GatewayIntentID is the payment gateway's identifier for the intent.
	GatewayIntentID string `json:"gatewayIntentId"`
	// Status is the gateway's view of the intent.
	Status PaymentStatus `json:"status"`

	// BuyerAmount is the total charged to the buyer.
	BuyerAmount decimal.Decimal `json:"buyerAmount"`
	// PlatformFee is the platform's share of BuyerAmount.
	PlatformFee decimal.Decimal `json:"platformFee"`
	// ScoutPayout is the scout's share of BuyerAmount.
	ScoutPayout decimal.Decimal `json:"scoutPayout"`

	// CreatedAt is the time the intent was first recorded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the record was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
