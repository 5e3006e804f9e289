package filter

import "errors"

// Parsing and validation failures wrap one of these sentinel kinds so
// callers can discriminate with errors.Is while still getting a
// message that names the offending fragment.
var (
	// ErrSyntax covers unbalanced parentheses, unterminated quotes,
	// empty segments from stray boolean keywords and missing operators.
	ErrSyntax = errors.New("invalid filter syntax")
	// ErrField is an unknown field, or colon syntax on a field that
	// does not support substring search.
	ErrField = errors.New("unknown or unsupported field")
	// ErrOperator is a recognized operator that the field does not allow.
	ErrOperator = errors.New("operator not allowed for field")
	// ErrValue is a literal outside the field's value domain.
	ErrValue = errors.New("value outside field domain")
	// ErrContradiction is a same-field equality conflict within one
	// AND group.
	ErrContradiction = errors.New("contradictory filter conditions")
	// ErrCrossFieldOr is an OR group mixing fields where at least one
	// field is flagged no-or.
	ErrCrossFieldOr = errors.New("field not allowed in mixed OR group")
)
