package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	codeMinLength = 4
	codeMaxLength = 24
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ErrCodeIsNotConstructed is returned when validating a zero-value Code.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("code must be created via NewCode or GenerateCode")

// Code is a short uppercase alphanumeric identifier issued to operators and
// clients: tracking codes, round codes, invoice codes and claim codes.
// A code is generated once and never changes.
type Code struct {
	value string
}

// NewCode parses an externally supplied code. Lowercase input is accepted and
// normalized to uppercase.
func NewCode(value string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(normalized) < codeMinLength || len(normalized) > codeMaxLength {
		return Code{}, errs.NewValueIsOutOfRangeError("code length", len(normalized), codeMinLength, codeMaxLength)
	}
	if !codePattern.MatchString(normalized) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q must contain only letters and digits", value))
	}

	return Code{value: normalized}, nil
}

// GenerateCode builds a candidate code from prefix followed by length random
// hexadecimal characters. Candidates are not guaranteed unique: callers rely on
// the storage uniqueness constraint and retry on conflict.
func GenerateCode(prefix string, length int) Code {
	if length <= 0 {
		length = codeMinLength
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(prefix))
	for sb.Len() < len(prefix)+length {
		sb.WriteString(strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")))
	}

	return Code{value: sb.String()[:len(prefix)+length]}
}

func (c Code) String() string {
	return c.value
}

func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}
