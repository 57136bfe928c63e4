package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it after Begin share the transaction. Domain
// events recorded by aggregates saved through them are written to the outbox
// by Commit, in the same transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes pending domain events and commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ClientRepository() ClientRepository
	DestinationRepository() DestinationRepository
	ServiceTierRepository() ServiceTierRepository
	DriverRepository() DriverRepository
	VehicleRepository() VehicleRepository
	ShipmentRepository() ShipmentRepository
	RoundRepository() RoundRepository
	InvoiceRepository() InvoiceRepository
	IncidentRepository() IncidentRepository
	ClaimRepository() ClaimRepository
	OperatorRepository() OperatorRepository
	OutboxRepository() OutboxRepository
}
