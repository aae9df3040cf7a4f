package analysis

import "errors"

// ErrDivisionByZero is returned when a ratio has a zero denominator and the
// metric is therefore undefined.
var ErrDivisionByZero = errors.New("division by zero")
