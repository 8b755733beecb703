package source

import "fmt"

// LoadError reports a failure to read a source that was available when it
// was checked, including a file removed between the check and the read.
type LoadError struct {
	// Source is the name of the failing source.
	Source string
	// Path is the file that could not be read.
	Path string
	// Err is the underlying I/O or parse error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading properties from file: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
