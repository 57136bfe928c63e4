// Package operator models back-office users allowed to sign in.
package operator

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")
	ErrInvalidCredentials       = errors.New("invalid credentials")
)

type Operator struct {
	id           kernel.UUID
	email        string
	username     string
	passwordHash []byte
	isStaff      bool
	isSuperuser  bool

	guard guard.ConstructorGuard
}

// NewOperator hashes password with bcrypt; the clear text is never retained.
func NewOperator(id kernel.UUID, email, username, password string, isStaff, isSuperuser bool) (*Operator, error) {
	o := &Operator{
		isStaff:     isStaff,
		isSuperuser: isSuperuser,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setEmail(email),
		o.setUsername(username),
		o.setPassword(password),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func RestoreOperator(id kernel.UUID, email, username string, passwordHash []byte, isStaff, isSuperuser bool) *Operator {
	return &Operator{
		id:           id,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isSuperuser:  isSuperuser,
		guard:        guard.NewConstructorGuard(),
	}
}

func (o *Operator) Validate() error {
	if o == nil {
		return ErrOperatorIsNotConstructed
	}
	return o.guard.Validate(ErrOperatorIsNotConstructed)
}

func (o *Operator) ID() kernel.UUID      { return o.id }
func (o *Operator) Email() string        { return o.email }
func (o *Operator) Username() string     { return o.username }
func (o *Operator) PasswordHash() []byte { return o.passwordHash }
func (o *Operator) IsStaff() bool        { return o.isStaff }
func (o *Operator) IsSuperuser() bool    { return o.isSuperuser }

// Authenticate returns ErrInvalidCredentials when password does not match.
func (o *Operator) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(o.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NormalizeEmail lowercases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (o *Operator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operator) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	o.email = email
	return nil
}

func (o *Operator) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	o.username = username
	return nil
}

func (o *Operator) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", fmt.Errorf("hash password: %w", err))
	}
	o.passwordHash = hash
	return nil
}
