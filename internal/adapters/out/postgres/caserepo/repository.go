package caserepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormIncidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormIncidentRepository(db *gorm.DB, tracker aggregateTracker) *GormIncidentRepository {
	return &GormIncidentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormIncidentRepository) Add(ctx context.Context, aggregate *cases.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := incidentFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "incident", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormIncidentRepository) Update(ctx context.Context, aggregate *cases.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := incidentFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IncidentDTO{}).Where("id = ?", dto.ID).
		Select("status", "resolution", "resolved_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("incident", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*cases.Incident, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormIncidentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*cases.Incident, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormIncidentRepository) get(db *gorm.DB, id kernel.UUID) (*cases.Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IncidentDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.NotFound(err, "incident", id.String())
	}

	return incidentToDomain(dto)
}

type GormClaimRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormClaimRepository(db *gorm.DB, tracker aggregateTracker) *GormClaimRepository {
	return &GormClaimRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormClaimRepository) Add(ctx context.Context, aggregate *cases.Claim) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := claimFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "claim_code", dto.Code)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormClaimRepository) Update(ctx context.Context, aggregate *cases.Claim) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := claimFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClaimDTO{}).Where("id = ?", dto.ID).
		Select("status", "response", "resolved_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("claim", aggregate.Code().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormClaimRepository) GetByCode(ctx context.Context, code kernel.Code) (*cases.Claim, error) {
	return r.getByCode(r.db.WithContext(ctx), code)
}

func (r *GormClaimRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*cases.Claim, error) {
	return r.getByCode(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), code)
}

func (r *GormClaimRepository) getByCode(db *gorm.DB, code kernel.Code) (*cases.Claim, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ClaimDTO
	if err := db.First(&dto, "code = ?", code.String()).Error; err != nil {
		return nil, dberrs.NotFound(err, "claim", code.String())
	}

	return claimToDomain(dto)
}
