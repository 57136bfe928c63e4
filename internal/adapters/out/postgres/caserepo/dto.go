// Package caserepo persists incidents and claims.
package caserepo

import (
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type IncidentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        string     `gorm:"size:16;not null;index"`
	Description string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:16;not null;index"`
	Resolution  string     `gorm:"type:text;not null;default:''"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	RoundID     *uuid.UUID `gorm:"type:uuid;index"`
	ReportedAt  time.Time  `gorm:"not null;index"`
}

func (IncidentDTO) TableName() string {
	return "incidents"
}

type ClaimDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"size:16;not null;uniqueIndex"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"size:16;not null;index"`
	Description string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:16;not null;index"`
	Response    string     `gorm:"type:text;not null;default:''"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	InvoiceID   *uuid.UUID `gorm:"type:uuid;index"`
	FiledAt     time.Time  `gorm:"not null;index"`
}

func (ClaimDTO) TableName() string {
	return "claims"
}

func incidentFromDomain(i *cases.Incident) IncidentDTO {
	return IncidentDTO{
		ID:          i.ID().Bytes(),
		Type:        i.Type().String(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Resolution:  i.Resolution(),
		ResolvedAt:  i.ResolvedAt(),
		ShipmentID:  kernel.OptionalBytes(i.ShipmentID()),
		RoundID:     kernel.OptionalBytes(i.RoundID()),
		ReportedAt:  i.ReportedAt(),
	}
}

func incidentToDomain(dto IncidentDTO) (*cases.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	kind, err := cases.ParseIncidentType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := cases.ParseIncidentStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.OptionalUUIDFromBytes(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	roundID, err := kernel.OptionalUUIDFromBytes(dto.RoundID)
	if err != nil {
		return nil, err
	}

	return cases.RestoreIncident(id, kind, dto.Description, status, dto.Resolution, dto.ResolvedAt, shipmentID,
		roundID, dto.ReportedAt), nil
}

func claimFromDomain(c *cases.Claim) ClaimDTO {
	return ClaimDTO{
		ID:          c.ID().Bytes(),
		Code:        c.Code().String(),
		ClientID:    c.ClientID().Bytes(),
		Type:        c.Type().String(),
		Description: c.Description(),
		Status:      c.Status().String(),
		Response:    c.Response(),
		ResolvedAt:  c.ResolvedAt(),
		ShipmentID:  kernel.OptionalBytes(c.ShipmentID()),
		InvoiceID:   kernel.OptionalBytes(c.InvoiceID()),
		FiledAt:     c.FiledAt(),
	}
}

func claimToDomain(dto ClaimDTO) (*cases.Claim, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	kind, err := cases.ParseClaimType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := cases.ParseClaimStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.OptionalUUIDFromBytes(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.OptionalUUIDFromBytes(dto.InvoiceID)
	if err != nil {
		return nil, err
	}

	return cases.RestoreClaim(id, code, clientID, kind, dto.Description, status, dto.Response, dto.ResolvedAt,
		shipmentID, invoiceID, dto.FiledAt), nil
}
