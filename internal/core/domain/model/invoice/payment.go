package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Method is how a payment was made.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	Check
	Wire
	Card
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod: "UNKNOWN",
		Cash:          "CASH",
		Check:         "CHECK",
		Wire:          "WIRE",
		Card:          "CARD",
	}
}

func Methods() []Method {
	return []Method{Cash, Check, Wire, Card}
}

func ParseMethod(value string) (Method, error) {
	for _, method := range Methods() {
		if method.String() == value {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a payment method", value))
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

func (m Method) Validate() error {
	if m < Cash || m > Card {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Payment is money received against an invoice. Payments are never edited.
type Payment struct {
	id        kernel.UUID
	amount    decimal.Decimal
	method    Method
	reference string
	comment   string
	paidAt    time.Time
}

func NewPayment(
	id kernel.UUID,
	amount decimal.Decimal,
	method Method,
	reference, comment string,
	paidAt time.Time,
) (Payment, error) {
	if err := errors.Join(
		id.Validate(),
		kernel.ValidatePositive("amount", amount),
		kernel.ValidateScale("amount", amount, kernel.MoneyScale),
		method.Validate(),
	); err != nil {
		return Payment{}, err
	}

	return Payment{
		id:        id,
		amount:    amount,
		method:    method,
		reference: strings.TrimSpace(reference),
		comment:   strings.TrimSpace(comment),
		paidAt:    paidAt.UTC().Truncate(time.Microsecond),
	}, nil
}

func RestorePayment(
	id kernel.UUID,
	amount decimal.Decimal,
	method Method,
	reference, comment string,
	paidAt time.Time,
) Payment {
	return Payment{id: id, amount: amount, method: method, reference: reference, comment: comment, paidAt: paidAt.UTC()}
}

func (p Payment) ID() kernel.UUID         { return p.id }
func (p Payment) Amount() decimal.Decimal { return p.amount }
func (p Payment) Method() Method          { return p.method }
func (p Payment) Reference() string       { return p.reference }
func (p Payment) Comment() string         { return p.comment }
func (p Payment) PaidAt() time.Time       { return p.paidAt }
