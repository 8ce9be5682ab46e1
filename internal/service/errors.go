package service

// ValidationError reports a missing or empty required field
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError reports a registration colliding with an existing username or email
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// AuthError reports failed credential verification. The message is the same
// for an unknown email and a wrong password so the caller cannot tell which
// field was wrong.
type AuthError struct{}

func (e *AuthError) Error() string { return "invalid credentials" }

// StorageError wraps an unanticipated failure from the store
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage failure: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
