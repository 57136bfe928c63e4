package commands

import (
	"errors"

	"freight/internal/pkg/errs"
)

// asInvalidReference reports a missing referenced entity as invalid input on
// paramName. The entity being operated on is not missing, one of its inputs is.
func asInvalidReference(paramName string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return err
}
