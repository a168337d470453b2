package user

// ConflictError signals a duplicate unique field (email or username taken).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError signals malformed or inconsistent input, e.g. mismatched
// password confirmation. Nothing is mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
