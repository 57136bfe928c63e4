// Package clientrepo persists client aggregates.
package clientrepo

import (
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientDTO is the clients row. Balance is written only by payment
// recording.
type ClientDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name    string          `gorm:"size:255;not null;index"`
	Address string          `gorm:"type:text;not null"`
	Phone   string          `gorm:"size:32;not null"`
	Balance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone(),
		Balance: aggregate.Balance(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return client.RestoreClient(id, dto.Name, dto.Address, dto.Phone, dto.Balance), nil
}
