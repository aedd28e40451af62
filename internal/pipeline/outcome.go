package pipeline

// Status tags an Outcome. Two generic statuses are shared by every command;
// command packages declare their own success statuses alongside their bodies.
type Status string

const (
	// StatusValidationFailed carries a *ValidationError body.
	StatusValidationFailed Status = "validation_failed"

	// StatusUnknownFailure carries no body. Anything that goes wrong during
	// solving collapses into this status; details stay server-side.
	StatusUnknownFailure Status = "unknown_failure"
)

// Outcome is the tagged result of a pipeline stage. The status uniquely
// determines the dynamic type of Body; construct outcomes through the
// per-status constructors so the pairing cannot drift.
type Outcome struct {
	Status Status
	Body   interface{}
}

// ValidationFailed wraps a validation error as a data outcome.
func ValidationFailed(err *ValidationError) *Outcome {
	return &Outcome{Status: StatusValidationFailed, Body: err}
}

// UnknownFailure is the opaque generic failure outcome.
func UnknownFailure() *Outcome {
	return &Outcome{Status: StatusUnknownFailure}
}

// Result builds a command-specific outcome.
func Result(status Status, body interface{}) *Outcome {
	return &Outcome{Status: status, Body: body}
}

// ValidationBody returns the validation error carried by a validation-failure
// outcome, or false for any other status.
func (o *Outcome) ValidationBody() (*ValidationError, bool) {
	if o.Status != StatusValidationFailed {
		return nil, false
	}
	verr, ok := o.Body.(*ValidationError)
	return verr, ok
}
