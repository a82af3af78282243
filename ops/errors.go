package ops

import (
	"errors"
	"fmt"
)

// Sentinel errors for the operation engine. All failures wrap one of these;
// callers match with errors.Is.
var (
	// ErrShapeMismatch indicates operand shapes incompatible with the
	// requested operation.
	ErrShapeMismatch = errors.New("ops: operand shapes incompatible")

	// ErrDivisionByZero indicates an elementwise division whose divisor
	// entry is structurally absent or stored as zero.
	ErrDivisionByZero = errors.New("ops: division by absent or zero entry")

	// ErrUnsupportedPair indicates a dispatcher call with an operand pair
	// that has no specialization.
	ErrUnsupportedPair = errors.New("ops: no specialization for format pair")

	// ErrNilOperand indicates a nil operand.
	ErrNilOperand = errors.New("ops: nil operand")
)

// opsErrorf wraps an underlying error with the given operation tag.
func opsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// shapeErrorf wraps ErrShapeMismatch with both operand shapes.
func shapeErrorf(op string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", op, ar, ac, br, bc, ErrShapeMismatch)
}

// divZeroErrorf wraps ErrDivisionByZero with the offending coordinate.
func divZeroErrorf(op string, i, j int) error {
	return fmt.Errorf("%s: entry (%d,%d): %w", op, i, j, ErrDivisionByZero)
}
