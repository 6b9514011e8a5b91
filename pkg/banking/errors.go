package banking

// ValidationError is a client-side advisory validation failure. It never
// reaches the network and is always recoverable by re-editing the draft
type ValidationError struct {
	Reason string
}

func (err *ValidationError) Error() string {
	return "Validation failed: " + err.Reason
}

// NewValidationError creates a validation error with a given reason
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// FetchError is a failed read from the banking service. Previously loaded
// data must be kept as-is when it occurs
type FetchError struct {
	cause error
}

func (err *FetchError) Error() string {
	return err.cause.Error()
}

// Cause returns an underlying error
func (err *FetchError) Cause() error {
	return err.cause
}

// NewFetchError marks given error as a read failure
func NewFetchError(cause error) error {
	return &FetchError{cause: cause}
}

// SubmissionError is a transaction create rejected by the banking service,
// including for reasons the client-side precheck could not anticipate.
// Terminal for the workflow instance that submitted it
type SubmissionError struct {
	cause error
}

func (err *SubmissionError) Error() string {
	return err.cause.Error()
}

// Cause returns an underlying error
func (err *SubmissionError) Cause() error {
	return err.cause
}

// NewSubmissionError marks given error as a submission failure
func NewSubmissionError(cause error) error {
	return &SubmissionError{cause: cause}
}

type causer interface {
	Cause() error
}

func errorInChain(err error, match func(error) bool) bool {
	for err != nil {
		if match(err) {
			return true
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return false
}

// IsValidationError tells if err or any of its causes is a ValidationError
func IsValidationError(err error) bool {
	return errorInChain(err, func(err error) bool {
		_, ok := err.(*ValidationError)
		return ok
	})
}

// IsFetchError tells if err or any of its causes is a FetchError
func IsFetchError(err error) bool {
	return errorInChain(err, func(err error) bool {
		_, ok := err.(*FetchError)
		return ok
	})
}

// IsSubmissionError tells if err or any of its causes is a SubmissionError
func IsSubmissionError(err error) bool {
	return errorInChain(err, func(err error) bool {
		_, ok := err.(*SubmissionError)
		return ok
	})
}
