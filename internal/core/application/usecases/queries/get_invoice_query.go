package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery loads an invoice with its lines and payments. The same read
// model feeds the PDF renderer.
type GetInvoiceQuery struct {
	code kernel.Code

	guard guard.ConstructorGuard
}

func NewGetInvoiceQuery(code kernel.Code) (GetInvoiceQuery, error) {
	if err := code.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}
	return GetInvoiceQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

func (q GetInvoiceQuery) Code() kernel.Code { return q.code }
