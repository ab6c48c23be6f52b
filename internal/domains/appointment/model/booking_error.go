package model

// BookingErrorKind enumerates every way a booking request can be rejected.
// The set is closed so callers can map each kind to a response exhaustively.
type BookingErrorKind string

const (
	KindInvalidPhoneFormat    BookingErrorKind = "invalid_phone_format"
	KindInvalidDateTimeFormat BookingErrorKind = "invalid_datetime_format"
	KindWeekendNotAvailable   BookingErrorKind = "weekend_not_available"
	KindOutsideBusinessHours  BookingErrorKind = "outside_business_hours"
	KindDuplicateSlot         BookingErrorKind = "duplicate_slot"
	KindPersistenceError      BookingErrorKind = "persistence_error"
)

// BookingError is a business-rule rejection of a booking request.
type BookingError struct {
	Kind    BookingErrorKind
	Message string
}

func (e *BookingError) Error() string {
	return e.Message
}

func NewBookingError(kind BookingErrorKind, message string) *BookingError {
	return &BookingError{
		Kind:    kind,
		Message: message,
	}
}

func ErrInvalidPhoneFormat() *BookingError {
	return NewBookingError(KindInvalidPhoneFormat, "Invalid phone number format")
}

func ErrInvalidDateTimeFormat() *BookingError {
	return NewBookingError(KindInvalidDateTimeFormat, "Invalid date or time format")
}

func ErrWeekendNotAvailable() *BookingError {
	return NewBookingError(KindWeekendNotAvailable, "Appointments are only available on weekdays")
}

func ErrOutsideBusinessHours() *BookingError {
	return NewBookingError(KindOutsideBusinessHours, "Appointments are only available between 09:00 and 17:00")
}

func ErrDuplicateSlot() *BookingError {
	return NewBookingError(KindDuplicateSlot, "This slot is already booked")
}

func ErrPersistence() *BookingError {
	return NewBookingError(KindPersistenceError, "Failed to save the appointment")
}
