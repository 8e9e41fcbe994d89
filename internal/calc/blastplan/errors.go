package blastplan

import "fmt"

// ValidationError reports an input field outside its declared domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComputationError reports geometry that cannot be evaluated, e.g. a zero
// burden making the per-hole rock volume vanish.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "cannot compute: " + e.Reason
}
