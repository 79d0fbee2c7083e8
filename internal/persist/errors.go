package persist

import "fmt"

// LoadError wraps a failed configuration read.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load config: %v", e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// SaveError wraps a failed configuration write.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save config: %v", e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }
