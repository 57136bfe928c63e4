package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectInvoices(h.db.WithContext(ctx))
	if query.Status() != nil {
		stmt = stmt.Where("i.status = ?", query.Status().String())
	}
	if query.ClientID() != nil {
		stmt = stmt.Where("i.client_id = ?", query.ClientID().Bytes())
	}

	var rows []invoiceRow
	if err := query.Page().apply(stmt.Order("i.issue_date DESC, i.created_at DESC")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	invoices := make([]InvoiceResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, response)
	}
	return invoices, nil
}
