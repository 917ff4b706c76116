package fielddata

import (
	"errors"
	"fmt"
)

// ErrIllegalAccess is returned when a definite value is requested for a
// document that has none, or when an exhausted iterator is advanced. It
// signals a contract violation by the caller (a skipped HasValue or
// HasNext check), not a recoverable runtime condition; there is nothing
// to retry.
//
// Silent narrowing never errors. Absence of a value is otherwise always
// expressible without an error: an empty DocValues view, an OnMissing
// callback, or a ValueOr default.
var ErrIllegalAccess = errors.New("illegal access")

func errNoValue(doc DocID) error {
	return fmt.Errorf("%w: document %d has no value", ErrIllegalAccess, doc)
}

func errExhausted() error {
	return fmt.Errorf("%w: iterator is exhausted", ErrIllegalAccess)
}
