// Package operatorrepo persists back-office operators.
package operatorrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/operator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperatorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:254;not null;uniqueIndex"`
	Username     string    `gorm:"size:150;not null"`
	PasswordHash []byte    `gorm:"not null"`
	IsStaff      bool      `gorm:"not null;default:false"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
}

func (OperatorDTO) TableName() string {
	return "operators"
}

type GormOperatorRepository struct {
	db *gorm.DB
}

func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OperatorDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		IsStaff:      aggregate.IsStaff(),
		IsSuperuser:  aggregate.IsSuperuser(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "email", dto.Email)
	}
	return nil
}

func (r *GormOperatorRepository) GetByEmail(ctx context.Context, email string) (*operator.Operator, error) {
	normalized := operator.NormalizeEmail(email)

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		return nil, dberrs.NotFound(err, "operator", normalized)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return operator.RestoreOperator(id, dto.Email, dto.Username, dto.PasswordHash, dto.IsStaff, dto.IsSuperuser), nil
}
