// Package kernel provides the shared domain primitives of the freight system.
//
// The package includes:
//   - UUID: the identifier value object used by every entity and aggregate
//   - Code: short uppercase alphanumeric business identifiers (tracking, round,
//     invoice and claim codes) and their random candidate generator
//   - DomainEvent, BaseEvent and EventRecorder: the event envelope aggregates use to
//     publish facts through the transactional outbox
//
// Values are immutable and validate their own invariants; zero values fail
// Validate so that objects built outside their constructors are detected.
package kernel
