package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRegisterOperatorCommandIsNotConstructed = errors.New(
	"RegisterOperatorCommand must be created via NewRegisterOperatorCommand constructor",
)

// RegisterOperatorCommand creates a back-office account. The password is
// only held until the handler hashes it.
type RegisterOperatorCommand struct {
	operatorID  kernel.UUID
	email       string
	username    string
	password    string
	isStaff     bool
	isSuperuser bool

	guard guard.ConstructorGuard
}

func NewRegisterOperatorCommand(
	operatorID kernel.UUID,
	email, username, password string,
	isStaff, isSuperuser bool,
) (RegisterOperatorCommand, error) {
	if err := errors.Join(
		operatorID.Validate(),
		requireText("email", email),
		requireText("username", username),
		requireText("password", password),
	); err != nil {
		return RegisterOperatorCommand{}, err
	}

	return RegisterOperatorCommand{
		operatorID:  operatorID,
		email:       strings.TrimSpace(email),
		username:    strings.TrimSpace(username),
		password:    password,
		isStaff:     isStaff,
		isSuperuser: isSuperuser,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterOperatorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOperatorCommandIsNotConstructed)
}

func (c RegisterOperatorCommand) OperatorID() kernel.UUID { return c.operatorID }
func (c RegisterOperatorCommand) Email() string           { return c.email }
func (c RegisterOperatorCommand) Username() string        { return c.username }
func (c RegisterOperatorCommand) Password() string        { return c.password }
func (c RegisterOperatorCommand) IsStaff() bool           { return c.isStaff }
func (c RegisterOperatorCommand) IsSuperuser() bool       { return c.isSuperuser }
