package pcview

import "fmt"

// ConfigurationError reports a setup problem that no input data can fix,
// such as a font that cannot be resolved or parsed. It is fatal for the
// operation that returned it and no partial output accompanies it.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pcview: %s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// PreconditionError reports an argument rejected before any work was done.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("pcview: invalid %s: %s", e.Field, e.Reason)
}
