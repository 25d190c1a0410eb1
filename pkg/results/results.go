// Package results carries the outcome of a service operation: either a success
// payload or a domain failure. Infrastructure errors travel separately as Go errors.
package results

// OperationResult holds exactly one of Success or Failure when populated.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// FailureResult wraps a domain failure.
func FailureResult[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}

// IsSuccess reports whether the result carries a success payload.
func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

// IsFailure reports whether the result carries a domain failure.
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }
