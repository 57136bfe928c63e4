package commands

import (
	"strings"

	"freight/internal/pkg/errs"
)

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
