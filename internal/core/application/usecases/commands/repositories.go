// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	TariffRepoFactory interface {
		DestinationRepository() ports.DestinationRepository
		ServiceTierRepository() ports.ServiceTierRepository
	}

	FleetRepoFactory interface {
		DriverRepository() ports.DriverRepository
		VehicleRepository() ports.VehicleRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	RoundRepoFactory interface {
		RoundRepository() ports.RoundRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	CaseRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
		ClaimRepository() ports.ClaimRepository
	}

	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ReferenceUoW covers clients, tariffs and the fleet.
	ReferenceUoW interface {
		TxManager
		ClientRepoFactory
		TariffRepoFactory
		FleetRepoFactory
	}

	ReferenceUoWFactory interface {
		Create() ReferenceUoW
	}

	// ShipmentUoW prices and tracks shipments.
	ShipmentUoW interface {
		TxManager
		ClientRepoFactory
		TariffRepoFactory
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// RoundUoW assembles rounds from shipments and crews.
	RoundUoW interface {
		TxManager
		FleetRepoFactory
		ShipmentRepoFactory
		RoundRepoFactory
	}

	RoundUoWFactory interface {
		Create() RoundUoW
	}

	// BillingUoW manages invoices, payments and client balances.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   inv, err := uow.InvoiceRepository().GetByCodeForUpdate(ctx, code)
	//   owner, err := uow.ClientRepository().GetForUpdate(ctx, inv.ClientID())
	//   // ... record the payment on both
	//
	//   err = uow.Commit(ctx)
	BillingUoW interface {
		TxManager
		ClientRepoFactory
		ShipmentRepoFactory
		InvoiceRepoFactory
	}

	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// CaseUoW records incidents and claims and resolves their links.
	CaseUoW interface {
		TxManager
		ClientRepoFactory
		ShipmentRepoFactory
		RoundRepoFactory
		InvoiceRepoFactory
		CaseRepoFactory
	}

	CaseUoWFactory interface {
		Create() CaseUoW
	}

	OperatorUoW interface {
		TxManager
		OperatorRepoFactory
	}

	OperatorUoWFactory interface {
		Create() OperatorUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
