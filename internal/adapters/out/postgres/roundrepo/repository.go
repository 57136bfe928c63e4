package roundrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRoundRepository implements ports.RoundRepository using GORM.
type GormRoundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRoundRepository(db *gorm.DB, tracker aggregateTracker) *GormRoundRepository {
	return &GormRoundRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRoundRepository) Add(ctx context.Context, aggregate *round.Round) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, memberships := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "round_code", dto.Code)
	}
	if err := syncMemberships(db, dto.ID, memberships); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoundRepository) Update(ctx context.Context, aggregate *round.Round) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, memberships := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&RoundDTO{}).Where("id = ?", dto.ID).
		Select("date", "driver_id", "vehicle_id", "status", "comment").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("round", aggregate.Code().String())
	}
	if err := syncMemberships(db, dto.ID, memberships); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoundRepository) GetByCode(ctx context.Context, code kernel.Code) (*round.Round, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, r.db.WithContext(ctx).Where("code = ?", code.String()), code.String())
}

func (r *GormRoundRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*round.Round, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("code = ?", code.String())
	return r.load(ctx, locked, code.String())
}

func (r *GormRoundRepository) FindActiveByShipment(ctx context.Context, shipmentID kernel.UUID) (*round.Round, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Joins("JOIN round_shipments ON round_shipments.round_id = rounds.id").
		Where("round_shipments.shipment_id = ? AND rounds.status <> ?", shipmentID.Bytes(), round.Cancelled.String()).
		Order("rounds.created_at DESC")
	return r.load(ctx, query, "shipment "+shipmentID.String())
}

// Delete removes the round and its memberships and unlinks incidents that
// referenced it.
func (r *GormRoundRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("round_id = ?", id.Bytes()).Delete(&MembershipDTO{}).Error; err != nil {
		return err
	}
	if err := db.Table("incidents").Where("round_id = ?", id.Bytes()).Update("round_id", nil).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&RoundDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("round", id.String())
	}
	return nil
}

func (r *GormRoundRepository) load(ctx context.Context, query *gorm.DB, ref string) (*round.Round, error) {
	var dto RoundDTO
	if err := query.Take(&dto).Error; err != nil {
		return nil, dberrs.NotFound(err, "round", ref)
	}

	var memberships []MembershipDTO
	if err := r.db.WithContext(ctx).
		Where("round_id = ?", dto.ID).
		Order("position").
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, memberships)
}

// syncMemberships makes the stored join rows match the aggregate: removed
// members are deleted, new ones inserted, kept ones left untouched.
func syncMemberships(db *gorm.DB, roundID uuid.UUID, memberships []MembershipDTO) error {
	stale := db.Where("round_id = ?", roundID)
	if len(memberships) > 0 {
		kept := make([]uuid.UUID, 0, len(memberships))
		for _, m := range memberships {
			kept = append(kept, m.ShipmentID)
		}
		stale = stale.Where("shipment_id NOT IN ?", kept)
	}
	if err := stale.Delete(&MembershipDTO{}).Error; err != nil {
		return err
	}

	if len(memberships) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&memberships).Error
}
