package fleetrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *fleet.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "license_number", dto.LicenseNumber)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.NotFound(err, "driver", id.String())
	}

	return driverToDomain(dto)
}

// Delete clears the driver on every round before removing the row, so rounds
// survive their driver.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteCrewMember(ctx, r.db, &DriverDTO{}, "driver", "driver_id", id)
}

type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *fleet.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "registration", dto.Registration)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.NotFound(err, "vehicle", id.String())
	}

	return vehicleToDomain(dto)
}

func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteCrewMember(ctx, r.db, &VehicleDTO{}, "vehicle", "vehicle_id", id)
}

func deleteCrewMember(ctx context.Context, db *gorm.DB, model any, paramName, column string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db = db.WithContext(ctx)
	if err := db.Table("rounds").Where(column+" = ?", id.Bytes()).Update(column, nil).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}
	return nil
}
