package shipmentrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, events := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "tracking_code", dto.TrackingCode)
	}
	if err := appendEvents(db, events); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the status and inserts the events the table does not hold
// yet. Price, references and stored events are left as they are.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, events := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.TrackingCode().String())
	}
	if err := appendEvents(db, events); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, r.db.WithContext(ctx), "id = ?", id.Bytes(), id.String())
}

func (r *GormShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.Code) (*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, r.db.WithContext(ctx), "tracking_code = ?", code.String(), code.String())
}

func (r *GormShipmentRepository) GetByTrackingCodeForUpdate(
	ctx context.Context,
	code kernel.Code,
) (*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.load(ctx, locked, "tracking_code = ?", code.String(), code.String())
}

func (r *GormShipmentRepository) load(
	ctx context.Context,
	db *gorm.DB,
	query string,
	arg any,
	ref string,
) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := db.First(&dto, query, arg).Error; err != nil {
		return nil, dberrs.NotFound(err, "shipment", ref)
	}

	var events []TrackingEventDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Order("occurred_at, id").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, events)
}

func appendEvents(db *gorm.DB, events []TrackingEventDTO) error {
	if len(events) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&events).Error
}
