package framework

import "strings"

// AggregatedError aggregates multiple errors.
type AggregatedError struct {
	Errors []error
}

// Error implements error.
func (e *AggregatedError) Error() string {
	msg := make([]string, len(e.Errors))
	for n, err := range e.Errors {
		msg[n] = err.Error()
	}
	return strings.Join(msg, "; ")
}

// Unwrap returns the first error so errors.Is and errors.As see the
// primary failure.
func (e *AggregatedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}

// Add adds errors to be aggregated. nil will be skipped.
func (e *AggregatedError) Add(errs ...error) *AggregatedError {
	for _, err := range errs {
		if err != nil {
			e.Errors = append(e.Errors, err)
		}
	}
	return e
}

// Aggregate returns nil when no error was added, the error itself when only
// one was added, or the aggregated error.
func (e *AggregatedError) Aggregate() error {
	switch len(e.Errors) {
	case 0:
		return nil
	case 1:
		return e.Errors[0]
	}
	return e
}
