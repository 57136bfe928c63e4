package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAuthenticateOperatorQueryIsNotConstructed = errors.New(
	"AuthenticateOperatorQuery must be created via NewAuthenticateOperatorQuery constructor",
)

// AuthenticateOperatorQuery checks one email/password pair.
type AuthenticateOperatorQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateOperatorQuery(email, password string) (AuthenticateOperatorQuery, error) {
	if email == "" {
		return AuthenticateOperatorQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateOperatorQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateOperatorQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateOperatorQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateOperatorQueryIsNotConstructed)
}

func (q AuthenticateOperatorQuery) Email() string    { return q.email }
func (q AuthenticateOperatorQuery) Password() string { return q.password }

// IdentityResponse is the minimal identity returned after a successful login.
type IdentityResponse struct {
	ID          kernel.UUID
	Username    string
	Email       string
	IsStaff     bool
	IsSuperuser bool
}
