package ports

import (
	"context"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
)

// InvoiceRepository persists invoices with their lines and payments.
type InvoiceRepository interface {
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists totals and status, inserts new lines and payments and
	// removes detached lines. Payments are append-only.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	GetByCode(ctx context.Context, code kernel.Code) (*invoice.Invoice, error)

	// GetByCodeForUpdate locks the invoice row. Concurrent payments against
	// the same invoice serialize on this lock.
	GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*invoice.Invoice, error)

	// FindActiveByShipment returns the non-cancelled invoice billing the
	// shipment, or an *errs.ObjectNotFoundError.
	FindActiveByShipment(ctx context.Context, shipmentID kernel.UUID) (*invoice.Invoice, error)
}
