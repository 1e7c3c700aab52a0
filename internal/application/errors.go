package application

import "errors"

var (
	// ErrRoomNotFound is returned when a referenced room does not exist.
	ErrRoomNotFound = errors.New("application: room not found")
	// ErrSlotConflict is returned when a booking overlaps an existing booking
	// for the same room and date.
	ErrSlotConflict = errors.New("application: time slot conflict")
	// ErrNoBookingsForCustomer is returned when a customer lookup matches no
	// bookings.
	ErrNoBookingsForCustomer = errors.New("application: no bookings for customer")
)

// ValidationError captures field level validation issues that callers can
// surface to users. Message carries the entity level summary shown to API
// clients; FieldErrors records the individual offending fields.
type ValidationError struct {
	Message     string
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	if v.Message != "" {
		return v.Message
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
