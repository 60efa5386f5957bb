package candidate

import "errors"

var (
	// ErrInvalidRecord indicates a record or record set failed shape validation.
	ErrInvalidRecord = errors.New("invalid candidate record")
	// ErrMissingID indicates a record has a blank id.
	ErrMissingID = errors.New("candidate id required")
	// ErrMissingField indicates a decoded record omits one of its fields.
	ErrMissingField = errors.New("candidate field missing")
	// ErrInvalidDecision indicates a decision outside the select/reject enumeration.
	ErrInvalidDecision = errors.New("decision must be select or reject")
	// ErrDuplicateID indicates two records share an id.
	ErrDuplicateID = errors.New("duplicate candidate id")
)
