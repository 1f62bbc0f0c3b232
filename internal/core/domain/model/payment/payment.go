package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// DefaultMethod is recorded when the caller does not name a payment channel.
const DefaultMethod = "Card"

// StatusPaid is the only status a recorded payment can carry. Payments are
// written once after the gateway confirms the charge and never change.
const StatusPaid = "Paid"

var ErrPaymentIsNotConstructed = errors.New(
	"payment is not constructed, use NewPayment or RestorePayment")

// Payment is an immutable record of a confirmed charge for a parcel.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	email         string
	amount        float64
	transactionID string
	method        string
	status        string
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a confirmed charge. transactionID is the gateway's
// reference and must be unique across all payments.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email string,
	amount float64,
	transactionID string,
	method string,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}
	if method == "" {
		method = DefaultMethod
	}

	return &Payment{
		id:            id,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		transactionID: transactionID,
		method:        method,
		status:        StatusPaid,
		createdAt:     time.Now(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a Payment from persistent storage.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email string,
	amount float64,
	transactionID string,
	method string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, parcelID, email, amount, transactionID, method)
	if err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment was created through one of its constructors.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) ParcelID() kernel.UUID {
	return p.parcelID
}

func (p *Payment) Email() string {
	return p.email
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) Method() string {
	return p.method
}

func (p *Payment) Status() string {
	return p.status
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
