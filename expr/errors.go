package expr

import (
	"errors"
	"fmt"
)

// Failures detected while simplifying or evaluating an expression.
var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNegativePowerOfZero = errors.New("negative power of zero")
	ErrEvenRootOfNegative  = errors.New("even root of a negative number")
	ErrUndefinedValue      = errors.New("function value is not defined")
	ErrAborted             = errors.New("computation aborted")
	ErrNotEvaluable        = errors.New("expression cannot be evaluated")
	ErrNotDifferentiable   = errors.New("expression cannot be differentiated")
)

// EvaluationError is raised when rewriting or evaluating would need
// a mathematically undefined value, or when the computation was
// aborted.
type EvaluationError struct {
	Op  string
	Err error
}

func (e *EvaluationError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// IsEvaluationError reports whether err carries an EvaluationError.
func IsEvaluationError(err error) bool {
	var ee *EvaluationError
	return errors.As(err, &ee)
}

func fail(op string, err error) error {
	return &EvaluationError{Op: op, Err: err}
}
