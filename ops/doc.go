// Package ops implements the matrix operation engine: elementwise addition,
// subtraction, division, scalar multiplication, Hadamard product, and dot
// product over the sparse containers and gonum dense operands.
//
// Per-pair specialization
//
// Every operation is a concrete function named for its operand pair
// (AddCSRCSR, DotCSRDense, HadamardDenseDense, ...). Callers select the
// specialization for their operand types at the call site; there is no
// format promotion and no dynamic dispatch inside the kernels. The
// closed set of pairs is the primary API. Add/Sub/Div/Hadamard/Dot/Scale
// type-switch wrappers exist as optional sugar for callers holding operands
// behind any, and report ErrUnsupportedPair for combinations without a
// specialization; keep them out of hot paths.
//
// Dense operands are gonum's *mat.Dense and *mat.VecDense. The dense×dense
// specializations delegate the arithmetic to gonum after validating shapes,
// so shape violations surface as ErrShapeMismatch instead of gonum panics.
//
// Structural semantics
//
//   - Add/Sub on sparse pairs produce the union of stored positions,
//     computed explicitly with a scatter workspace. Input segments may be
//     unsorted; duplicate coordinates contribute their sum. Entries that
//     cancel to zero stay stored; EliminateZeros is the cleanup.
//   - Hadamard produces the intersection of stored positions.
//   - Div keeps the dividend's pattern and requires a nonzero divisor entry
//     at every stored position: a structurally absent or stored-zero divisor
//     is ErrDivisionByZero, never a silent zero.
//   - Results are always fresh containers; operands are never mutated.
//
// Errors:
//
//	ErrShapeMismatch   - operand shapes incompatible for the operation.
//	ErrDivisionByZero  - divisor entry structurally absent or zero.
//	ErrUnsupportedPair - dispatcher called with an unspecialized pair.
//	ErrNilOperand      - nil operand.
package ops
