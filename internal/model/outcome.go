package model

import "fmt"

// ErrorDetail describes a fetch that failed through its whole retry budget.
// Attempts counts every attempt made, including the first.
type ErrorDetail struct {
	Attempts int
	Cause    error
}

func (e *ErrorDetail) Error() string {
	return fmt.Sprintf("fetch failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ErrorDetail) Unwrap() error { return e.Cause }

// FetchOutcome is the result of one completed fetch request: either a
// snapshot or an ErrorDetail, never both. Attempts counts every attempt
// made on either path, so Attempts-1 is the number of retries spent.
type FetchOutcome struct {
	Snapshot *HealthSnapshot
	Err      *ErrorDetail
	Attempts int
}

// Success wraps a snapshot obtained on the given attempt count.
func Success(snap *HealthSnapshot, attempts int) FetchOutcome {
	return FetchOutcome{Snapshot: snap, Attempts: attempts}
}

// Failure wraps the final error after the retry budget is exhausted.
func Failure(cause error, attempts int) FetchOutcome {
	return FetchOutcome{
		Err:      &ErrorDetail{Attempts: attempts, Cause: cause},
		Attempts: attempts,
	}
}

// OK reports whether the outcome carries a snapshot.
func (o FetchOutcome) OK() bool { return o.Snapshot != nil }
