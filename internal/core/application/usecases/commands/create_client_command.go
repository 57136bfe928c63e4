package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a client. Its balance starts at zero and is
// only moved by payments.
type CreateClientCommand struct {
	clientID kernel.UUID
	name     string
	address  string
	phone    string

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(clientID kernel.UUID, name, address, phone string) (CreateClientCommand, error) {
	if err := errors.Join(
		clientID.Validate(),
		requireText("name", name),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID: clientID,
		name:     strings.TrimSpace(name),
		address:  strings.TrimSpace(address),
		phone:    strings.TrimSpace(phone),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }
func (c CreateClientCommand) Name() string          { return c.name }
func (c CreateClientCommand) Address() string       { return c.address }
func (c CreateClientCommand) Phone() string         { return c.phone }
