package provision

import "fmt"

// AbortError marks a fail-stop workflow failure, recording which stage
// was executing when the run aborted.
type AbortError struct {
	Stage Stage
	Err   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("install aborted during %s: %v", e.Stage, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}
