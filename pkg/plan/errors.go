package plan

import "fmt"

// DomainError reports an input value outside its physically valid domain.
// It is raised at construction/validation time, never mid-evaluation.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// ConfigError reports an invalid optimization configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}
