package extract

import "fmt"

// InternalError reports a failure that prevented any result from being
// produced, including recovered panics.
type InternalError struct {
	Op    string
	Err   error
	Panic any
}

func (e *InternalError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("%s: unexpected failure: %v", e.Op, e.Panic)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
