package queries

import (
	"context"
	"strings"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type clientRow struct {
	ID            uuid.UUID
	Name          string
	Address       string
	Phone         string
	Balance       decimal.Decimal
	ShipmentCount int
	InvoiceCount  int
}

func selectClients(db *gorm.DB) *gorm.DB {
	return db.Table("clients AS c").
		Select(`c.id, c.name, c.address, c.phone, c.balance,
			(SELECT COUNT(*) FROM shipments s WHERE s.client_id = c.id) AS shipment_count,
			(SELECT COUNT(*) FROM invoices i WHERE i.client_id = c.id) AS invoice_count`)
}

func (r clientRow) toResponse() (ClientResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ClientResponse{}, err
	}
	return ClientResponse{
		ID:            id,
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		Balance:       r.Balance.Round(2),
		ShipmentCount: r.ShipmentCount,
		InvoiceCount:  r.InvoiceCount,
	}, nil
}

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectClients(h.db.WithContext(ctx))
	if query.Search() != "" {
		stmt = stmt.Where("LOWER(c.name) LIKE ?", "%"+strings.ToLower(query.Search())+"%")
	}

	var rows []clientRow
	if err := query.Page().apply(stmt.Order("c.name, c.id")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		clients = append(clients, response)
	}
	return clients, nil
}
