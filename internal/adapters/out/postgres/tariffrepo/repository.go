package tariffrepo

import (
	"context"
	"fmt"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormDestinationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDestinationRepository(db *gorm.DB, tracker aggregateTracker) *GormDestinationRepository {
	return &GormDestinationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDestinationRepository) Add(ctx context.Context, aggregate *tariff.Destination) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := destinationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "destination", dto.City+", "+dto.Country)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDestinationRepository) Update(ctx context.Context, aggregate *tariff.Destination) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := destinationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DestinationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return dberrs.Translate(result.Error, "destination", dto.City+", "+dto.Country)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("destination", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.Destination, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DestinationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.NotFound(err, "destination", id.String())
	}

	return destinationToDomain(dto)
}

// Delete refuses to drop a destination that priced at least one shipment.
func (r *GormDestinationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteUnreferenced(ctx, r.db, &DestinationDTO{}, "destination", "destination_id", id)
}

type GormServiceTierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormServiceTierRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceTierRepository {
	return &GormServiceTierRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormServiceTierRepository) Add(ctx context.Context, aggregate *tariff.ServiceTier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceTierFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "service_tier", dto.Name)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormServiceTierRepository) Update(ctx context.Context, aggregate *tariff.ServiceTier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceTierFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ServiceTierDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return dberrs.Translate(result.Error, "service_tier", dto.Name)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service_tier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormServiceTierRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.ServiceTier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceTierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.NotFound(err, "service_tier", id.String())
	}

	return serviceTierToDomain(dto)
}

func (r *GormServiceTierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteUnreferenced(ctx, r.db, &ServiceTierDTO{}, "service_tier", "service_tier_id", id)
}

// deleteUnreferenced removes a tariff row unless a shipment still points at
// it. The foreign key on shipments backs the check on PostgreSQL.
func deleteUnreferenced(ctx context.Context, db *gorm.DB, model any, paramName, column string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var referenced int64
	if err := db.WithContext(ctx).Table("shipments").Where(column+" = ?", id.Bytes()).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return errs.NewConflictErrorWithCause(paramName, id.String(),
			fmt.Errorf("referenced by %d shipment(s)", referenced))
	}

	result := db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(model)
	if result.Error != nil {
		return dberrs.Translate(result.Error, paramName, id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}
	return nil
}
