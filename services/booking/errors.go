package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoServices is returned when a flow is confirmed with an empty cart.
var ErrNoServices = errors.New("no services selected")

// ValidationError reports the required fields that were missing or malformed
// at submission time. No write happens when it is returned.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// PaymentError reports a failed or declined gateway charge. The session is
// left intact so the customer can retry.
type PaymentError struct {
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PaymentError) Unwrap() error { return e.Err }

// PersistenceError reports a failed booking write. When it follows a
// successful charge the caller must direct the customer to support; there is
// no automatic reconciliation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
