package kernel

import (
	"errors"
	"fmt"
)

// Sentinel errors for signature lookups and kernel declarations.
var (
	// ErrUnknownKind indicates a signature lookup for an unknown container
	// kind name.
	ErrUnknownKind = errors.New("kernel: unknown container kind")

	// ErrEmptyName indicates a kernel declaration without a name.
	ErrEmptyName = errors.New("kernel: empty kernel name")

	// ErrBadMode indicates an undeclared concurrency mode value.
	ErrBadMode = errors.New("kernel: unknown concurrency mode")
)

// kernelErrorf wraps an underlying error with the given operation tag.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
