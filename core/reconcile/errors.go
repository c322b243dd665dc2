package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID indicates that an input collection holds two entities with the same id.
	ErrDuplicateID = errors.New("duplicate entity id")

	// ErrFieldUnavailable indicates that a catalog accessor could not read a field.
	ErrFieldUnavailable = errors.New("field unavailable")
)

// DuplicateIDError reports the collection and id that violated uniqueness.
type DuplicateIDError struct {
	Collection string
	ID         string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Collection, ErrDuplicateID, e.ID)
}

// Is implements errors.Is support.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// Slot names the snapshot a diff value was read from.
type Slot string

const (
	SlotCurrent   Slot = "current"
	SlotFormer    Slot = "former"
	SlotSuggested Slot = "suggested"
	// SlotEntry is used for values of added and deleted list entries.
	SlotEntry Slot = "entry"
)

// FieldError records a field that could not be read. It never aborts a
// reconciliation; the affected value is replaced by the Unavailable marker.
type FieldError struct {
	ID    string
	Field string
	Slot  Slot
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("entity %q field %s (%s): %v", e.ID, e.Field, e.Slot, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *FieldError) Is(target error) bool {
	return target == ErrFieldUnavailable
}

// MarshalJSON includes the error text alongside the field coordinates.
func (e *FieldError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		ID      string `json:"id"`
		Field   string `json:"field"`
		Slot    Slot   `json:"slot"`
		Message string `json:"message"`
	}{e.ID, e.Field, e.Slot, msg})
}

// MissingField returns an error an accessor can use for an absent field.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrFieldUnavailable, name)
}
