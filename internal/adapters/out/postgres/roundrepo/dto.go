// Package roundrepo persists delivery rounds and their ordered shipment
// memberships.
package roundrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"

	"github.com/google/uuid"
)

type RoundDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code      string     `gorm:"size:16;not null;uniqueIndex"`
	Date      time.Time  `gorm:"type:date;not null;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"size:32;not null;index"`
	Comment   string     `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (RoundDTO) TableName() string {
	return "rounds"
}

// MembershipDTO is a row of the round/shipment join table. Positions are
// unique within a round.
type MembershipDTO struct {
	RoundID    uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_round_shipments_position,priority:1"`
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position   int       `gorm:"not null;uniqueIndex:idx_round_shipments_position,priority:2"`
	AddedAt    time.Time `gorm:"not null"`
}

func (MembershipDTO) TableName() string {
	return "round_shipments"
}

func fromDomain(aggregate *round.Round) (RoundDTO, []MembershipDTO) {
	dto := RoundDTO{
		ID:        aggregate.ID().Bytes(),
		Code:      aggregate.Code().String(),
		Date:      aggregate.Date(),
		DriverID:  kernel.OptionalBytes(aggregate.DriverID()),
		VehicleID: kernel.OptionalBytes(aggregate.VehicleID()),
		Status:    aggregate.Status().String(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}

	memberships := make([]MembershipDTO, 0, len(aggregate.Memberships()))
	for _, m := range aggregate.Memberships() {
		memberships = append(memberships, MembershipDTO{
			RoundID:    dto.ID,
			ShipmentID: m.ShipmentID().Bytes(),
			Position:   m.Position(),
			AddedAt:    m.AddedAt(),
		})
	}

	return dto, memberships
}

func toDomain(dto RoundDTO, membershipDTOs []MembershipDTO) (*round.Round, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.OptionalUUIDFromBytes(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.OptionalUUIDFromBytes(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	status, err := round.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	memberships := make([]round.Membership, 0, len(membershipDTOs))
	for _, m := range membershipDTOs {
		shipmentID, idErr := kernel.UUIDFromBytes(m.ShipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		memberships = append(memberships, round.RestoreMembership(shipmentID, m.Position, m.AddedAt))
	}

	return round.RestoreRound(id, code, dto.Date, driverID, vehicleID, status, dto.Comment, dto.CreatedAt,
		memberships), nil
}
