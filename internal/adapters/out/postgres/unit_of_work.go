// Package postgres provides the GORM-based Unit of Work shared by every
// command handler, together with connection setup and schema migration.
//
// A unit of work maintains the aggregates touched by one business
// transaction. On Commit the domain events those aggregates recorded are
// written to the outbox table inside the same transaction, so an event is
// stored if and only if the change that produced it is.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	inv, err := uow.InvoiceRepository().GetByCodeForUpdate(ctx, code)
//	if err != nil {
//	    return err
//	}
//	// mutate inv ...
//	if err := uow.InvoiceRepository().Update(ctx, inv); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction and must not be shared
//     between goroutines.
//   - Rows read through a ...ForUpdate method stay locked until Commit or
//     Rollback.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"freight/internal/adapters/out/postgres/caserepo"
	"freight/internal/adapters/out/postgres/clientrepo"
	"freight/internal/adapters/out/postgres/fleetrepo"
	"freight/internal/adapters/out/postgres/invoicerepo"
	"freight/internal/adapters/out/postgres/operatorrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/roundrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/tariffrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one *gorm.DB pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit flushes pending domain events of the tracked aggregates to the
// outbox and commits. When the flush fails the transaction stays open so the
// caller's deferred Rollback discards it.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, messages, err := uow.pendingEvents()
	if err != nil {
		return err
	}
	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, messages); err != nil {
		return fmt.Errorf("write outbox: %w", err)
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, source := range sources {
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates. Their
// recorded events stay on the aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DestinationRepository() ports.DestinationRepository {
	return tariffrepo.NewGormDestinationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ServiceTierRepository() ports.ServiceTierRepository {
	return tariffrepo.NewGormServiceTierRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return fleetrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return fleetrepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RoundRepository() ports.RoundRepository {
	return roundrepo.NewGormRoundRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) IncidentRepository() ports.IncidentRepository {
	return caserepo.NewGormIncidentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ClaimRepository() ports.ClaimRepository {
	return caserepo.NewGormClaimRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OperatorRepository() ports.OperatorRepository {
	return operatorrepo.NewGormOperatorRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written through one of the
// repositories. Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn is the open transaction, or the pool when none was begun.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// pendingEvents serializes the events of every distinct tracked aggregate.
// An aggregate saved twice in one transaction is only read once.
func (uow *GormUnitOfWork) pendingEvents() ([]kernel.EventSource, []ports.OutboxMessage, error) {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	sources := make([]kernel.EventSource, 0)
	messages := make([]ports.OutboxMessage, 0)

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(kernel.EventSource)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.Aggregate]; dup {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}
		sources = append(sources, source)

		for _, event := range source.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return nil, nil, fmt.Errorf("marshal %s event: %w", event.EventName(), err)
			}
			messages = append(messages, ports.OutboxMessage{
				ID:          event.EventID(),
				EventName:   event.EventName(),
				AggregateID: event.AggregateID(),
				Payload:     payload,
				OccurredAt:  event.OccurredAt(),
			})
		}
	}

	return sources, messages, nil
}
