// Package errs holds the error taxonomy shared by the domain, the use cases and
// the adapters.
//
// Validation failures come in three shapes (ValueIsRequiredError,
// ValueIsInvalidError, ValueIsOutOfRangeError) and IsValidation treats them as
// one family. ObjectNotFoundError reports a missing entity, ConflictError a
// duplicate such as a shipment billed twice or an exhausted code retry, and
// InvalidStateError an operation the lifecycle forbids.
//
// Every type wraps a sentinel (ErrValueIsRequired, ErrConflict, ...) so callers
// match with errors.Is, and carries the offending parameter name, which
// ParamName recovers for field-level error responses.
package errs
