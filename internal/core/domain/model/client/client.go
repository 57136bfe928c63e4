// Package client models the carrier's customers and their running balance.
package client

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client owns shipments, invoices and claims. Balance is the outstanding debt
// towards the carrier; it is only moved by SettlePayment, which the billing
// ledger calls inside the payment transaction.
type Client struct {
	id      kernel.UUID
	name    string
	address string
	phone   string
	balance decimal.Decimal

	guard guard.ConstructorGuard
}

func NewClient(id kernel.UUID, name, address, phone string) (*Client, error) {
	c := &Client{
		balance: decimal.Zero,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.address = strings.TrimSpace(address)
	c.phone = strings.TrimSpace(phone)
	return c, nil
}

func RestoreClient(id kernel.UUID, name, address, phone string, balance decimal.Decimal) *Client {
	return &Client{
		id:      id,
		name:    name,
		address: address,
		phone:   phone,
		balance: balance,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Balance() decimal.Decimal {
	return c.balance
}

// SettlePayment decreases the balance by a received payment amount.
func (c *Client) SettlePayment(amount decimal.Decimal) error {
	if err := kernel.ValidatePositive("amount", amount); err != nil {
		return err
	}
	c.balance = c.balance.Sub(amount)
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
