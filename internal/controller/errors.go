package controller

import "errors"

// Kind discriminates the two error families the controllers surface.
// Validation errors are raised before any store call and never wrap a
// cause; operation errors always wrap the store failure.
type Kind int

const (
	ValidationFailed Kind = iota + 1
	OperationFailed
)

// Error is the tagged error every controller operation fails with.
// Callers that need the legacy message form get it from Error(): the
// operation label is rendered into a fixed human-readable prefix, so
// the exact strings remain a compatibility surface.
type Error struct {
	Kind   Kind
	Op     string // e.g. "create booking"
	Prefix string // overrides the default "Failed to <op>" rendering
	Detail string // validation detail, empty for wrapped failures
	Cause  error
}

func (e *Error) Error() string {
	p := e.Prefix
	if p == "" {
		p = "Failed to " + e.Op
	}
	switch {
	case e.Detail != "":
		return p + ": " + e.Detail
	case e.Cause != nil:
		return p + ": " + e.Cause.Error()
	}
	return p
}

func (e *Error) Unwrap() error { return e.Cause }

func opFailed(op string, cause error) error {
	return &Error{Kind: OperationFailed, Op: op, Cause: cause}
}

func invalid(op, detail string) error {
	return &Error{Kind: ValidationFailed, Op: op, Detail: detail}
}

// relabel rewrites the operation label on a controller error so sugar
// operations report their own name instead of the delegate's. Non
// controller errors are wrapped as operation failures.
func relabel(err error, op string) error {
	var ce *Error
	if errors.As(err, &ce) {
		ne := *ce
		ne.Op = op
		ne.Prefix = ""
		return &ne
	}
	return opFailed(op, err)
}

// IsValidation reports whether err is a controller validation error.
func IsValidation(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == ValidationFailed
}
