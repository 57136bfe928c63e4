// Package outboxrepo stores domain events written alongside the aggregate
// changes that produced them, until a relay publishes them.
package outboxrepo

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventName   string         `gorm:"size:128;not null;index"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload     datatypes.JSON `gorm:"not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append inserts messages; an id already present is ignored.
func (r *GormOutboxRepository) Append(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID.Bytes(),
			EventName:   m.EventName,
			AggregateID: m.AggregateID.Bytes(),
			Payload:     datatypes.JSON(m.Payload),
			OccurredAt:  m.OccurredAt,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}

// ClaimPending locks up to limit unpublished messages, oldest first. Rows
// locked by a concurrent relay are skipped rather than waited for.
func (r *GormOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		aggregateID, idErr := kernel.UUIDFromBytes(dto.AggregateID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			EventName:   dto.EventName,
			AggregateID: aggregateID,
			Payload:     []byte(dto.Payload),
			OccurredAt:  dto.OccurredAt,
		})
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
