// Package ports defines the contracts between the freight core and its
// infrastructure: repositories for every aggregate, the unit of work that
// binds them to one transaction, and the outbox used to hand domain events to
// a message broker.
//
// Repositories never commit on their own. Every mutation happens inside a
// UnitOfWork; methods with a ForUpdate suffix take a row lock that is held
// until the unit of work commits or rolls back.
//
// Lookups of a missing entity return an *errs.ObjectNotFoundError. Writes that
// violate a uniqueness or referential constraint return an *errs.ConflictError.
package ports
