package chikklvm

import "fmt"

// ErrorCode represents a KLVM error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid generation configuration
	ErrInvalidConfig

	// ErrFormat represents malformed canonical input
	ErrFormat

	// ErrNoProducer represents a catalog-authoring defect: an operand
	// type no catalog signature can produce
	ErrNoProducer

	// ErrCorpusIO represents a filesystem failure while persisting a
	// corpus sample
	ErrCorpusIO
)

// KLVMError represents a KLVM error
type KLVMError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *KLVMError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("chik-klvm error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("chik-klvm error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *KLVMError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *KLVMError) Is(target error) bool {
	t, ok := target.(*KLVMError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
