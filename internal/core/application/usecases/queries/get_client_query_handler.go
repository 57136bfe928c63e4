package queries

import (
	"context"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return ClientResponse{}, err
	}

	var rows []clientRow
	err := selectClients(h.db.WithContext(ctx)).Where("c.id = ?", query.ID().Bytes()).Limit(1).Scan(&rows).Error
	if err != nil {
		return ClientResponse{}, err
	}
	if len(rows) == 0 {
		return ClientResponse{}, errs.NewObjectNotFoundError("client", query.ID().String())
	}
	return rows[0].toResponse()
}
