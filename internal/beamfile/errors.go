package beamfile

import (
	"errors"
	"fmt"
)

// Parse failures. Every error returned by this package wraps one of these,
// so callers can classify a rejected record with errors.Is.
var (
	ErrInvalidNumber            = errors.New("invalid number")
	ErrMalformedSupportToken    = errors.New("malformed support token")
	ErrMalformedLoadRow         = errors.New("malformed load row")
	ErrMalformedCaseToken       = errors.New("malformed case token")
	ErrMissingRequiredAttribute = errors.New("missing required attribute")
	ErrTooManyAttributes        = errors.New("too many attributes")
	ErrInvalidAttribute         = errors.New("invalid attribute")
	ErrNoSupportsDefined        = errors.New("no supports defined")
	ErrDuplicateSupportLocation = errors.New("duplicate support location")
	ErrUnknownSupportKind       = errors.New("unknown support kind")
	ErrLocationOutOfRange       = errors.New("location outside beam")
	ErrMissingRow               = errors.New("missing row")
	ErrMissingName              = errors.New("missing beam name")
	ErrNoLoadsDefined           = errors.New("no loads defined")
)

// Expected row shapes, quoted back to the user in a ParseError.
const (
	shapeName       = "<beam name>"
	shapeAttributes = "L, E, Iz[, Iy, A, J, nu, rho]"
	shapeSupport    = "<location>:<P|R|F>"
	shapePointLoad  = "POINT:<direction>, <magnitude>, <location>, case:<label>"
	shapeDistLoad   = "DIST:<direction>, <w1>, <w2>, <x1>, <x2>, case:<label>"
	shapeLoad       = shapePointLoad + " | " + shapeDistLoad
	shapeCase       = "case:<label>"
)

// ParseError reports a rejected record. It carries enough context (row,
// token, expected shape) to fix the input without re-running anything.
type ParseError struct {
	Beam     string // beam name, empty if the name row itself was rejected
	Row      int    // zero-based row index within the record, -1 if not row specific
	Token    string // offending token, or the joined row
	Expected string // expected shape of the row or token
	Err      error  // one of the Err* sentinels
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Row >= 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	if e.Beam != "" {
		msg = fmt.Sprintf("beam %q: %s", e.Beam, msg)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %s)", e.Expected)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rowError builds a ParseError without beam context; Parse fills it in.
func rowError(row int, token, expected string, err error) *ParseError {
	return &ParseError{Row: row, Token: token, Expected: expected, Err: err}
}
