package extraction

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a keyed profile lookup matched no row. It is an
// expected outcome, not a persistence failure.
var ErrNotFound = errors.New("personal data not found")

// MissingParameterError reports a required request parameter that was absent
// or empty. No external calls are made once it is raised.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Param)
}

// InferenceError wraps a failure calling the vision inference API.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference api error: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// ParseError reports an inference response that was neither direct JSON nor
// a recoverable fenced JSON block.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse extraction response: %s", e.Detail)
}

// PersistenceError wraps a database failure, tagged with the operation that
// failed for observability.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Stage names the pipeline stage an error belongs to, for log context only;
// the external failure contract is uniform across stages.
func Stage(err error) string {
	var missing *MissingParameterError
	var inference *InferenceError
	var parse *ParseError
	var persistence *PersistenceError
	switch {
	case errors.As(err, &missing):
		return "validation"
	case errors.As(err, &inference):
		return "inference"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &persistence):
		return "persistence"
	default:
		return "unknown"
	}
}
