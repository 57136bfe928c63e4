package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies entities and aggregates. It wraps github.com/google/uuid
// and is immutable. The zero value is invalid: build one with NewUUID,
// UUIDFromString or UUIDFromBytes.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	clientID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid client ID: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of a UUID, as received from HTTP
// path parameters or request bodies.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	return UUID{
		id: id,
	}, nil
}

// UUIDFromBytes rebuilds a UUID from its 16-byte form, typically when
// rehydrating rows from the database.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID bytes: %w", err)
	}

	return UUID{
		id: id,
	}, nil
}

// OptionalUUIDFromBytes converts a nullable database column into an optional
// identifier.
func OptionalUUIDFromBytes(id *uuid.UUID) (*UUID, error) {
	if id == nil {
		return nil, nil
	}

	value, err := UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// String returns the canonical hyphenated representation.
func (u UUID) String() string {
	return u.id.String()
}

// MarshalText renders the canonical form so UUIDs encode as JSON strings.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// Bytes returns the underlying google/uuid value, used by persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// OptionalBytes is the nullable counterpart of Bytes.
func OptionalBytes(u *UUID) *uuid.UUID {
	if u == nil {
		return nil
	}
	id := u.id
	return &id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}

	return nil
}
