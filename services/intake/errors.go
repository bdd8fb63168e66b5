package intake

// ValidationError rejects a submission before anything is written. The
// message is user-facing and describes the first unmet rule only.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given user-facing
// message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// PersistenceError signals that the database insert failed; the submission
// was not saved and the notification step never ran.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
