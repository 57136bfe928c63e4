package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// maxCodeAttempts bounds how many fresh codes are tried before a collision
// is reported to the caller.
const maxCodeAttempts = 5

// withFreshCode runs attempt with a newly generated code until it stops
// failing with a conflict. Each attempt must run in its own transaction,
// since a failed insert aborts the one it ran in.
func withFreshCode(ctx context.Context, generate func() kernel.Code, attempt func(kernel.Code) error) error {
	var err error
	for range maxCodeAttempts {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = attempt(generate())
		if !errors.Is(err, errs.ErrConflict) {
			return err
		}
	}
	return err
}
