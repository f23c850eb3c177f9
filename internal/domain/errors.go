package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrNoSlotAvailable means the slot search exhausted its horizon. It is
	// always fatal to the suggestion flow; callers must not fall back to an
	// unchecked time.
	ErrNoSlotAvailable    = errors.New("no slot available within the search horizon")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Violation codes reported by ScheduleService.Validate.
const (
	ViolationInvalidInterval      = "invalid_interval"
	ViolationMissingRequiredField = "missing_required_field"
	ViolationSchedulingConflict   = "scheduling_conflict"
)

// Violation is a single validation failure for an attempted appointment
// submission.
type Violation struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one submission so a UI
// can display them together instead of one at a time.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("appointment validation failed: %s", strings.Join(msgs, "; "))
}

// AsValidationError returns the *ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
