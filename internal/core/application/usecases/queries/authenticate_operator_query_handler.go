package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/operator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthenticateOperatorQueryHandler struct {
	db *gorm.DB
}

func NewAuthenticateOperatorQueryHandler(db *gorm.DB) AuthenticateOperatorQueryHandler {
	return AuthenticateOperatorQueryHandler{db: db}
}

// Handle returns operator.ErrInvalidCredentials both for an unknown email and
// for a wrong password.
func (h AuthenticateOperatorQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateOperatorQuery,
) (IdentityResponse, error) {
	if err := query.Validate(); err != nil {
		return IdentityResponse{}, err
	}

	var rows []struct {
		ID           uuid.UUID
		Email        string
		Username     string
		PasswordHash []byte
		IsStaff      bool
		IsSuperuser  bool
	}
	err := h.db.WithContext(ctx).Table("operators").
		Select("id, email, username, password_hash, is_staff, is_superuser").
		Where("email = ?", operator.NormalizeEmail(query.Email())).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return IdentityResponse{}, err
	}
	if len(rows) == 0 {
		return IdentityResponse{}, operator.ErrInvalidCredentials
	}

	row := rows[0]
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return IdentityResponse{}, err
	}
	op := operator.RestoreOperator(id, row.Email, row.Username, row.PasswordHash, row.IsStaff, row.IsSuperuser)
	if err = op.Authenticate(query.Password()); err != nil {
		return IdentityResponse{}, err
	}

	return IdentityResponse{
		ID:          op.ID(),
		Username:    op.Username(),
		Email:       op.Email(),
		IsStaff:     op.IsStaff(),
		IsSuperuser: op.IsSuperuser(),
	}, nil
}
