package kernel

import "fmt"

// ElemKind is the element type of one signature field.
type ElemKind uint8

const (
	// ElemInt marks an integer-valued field: indices and shape numbers.
	ElemInt ElemKind = iota
	// ElemFloat marks a float64-valued field: stored entries and attributes.
	ElemFloat
)

// String implements fmt.Stringer.
func (k ElemKind) String() string {
	switch k {
	case ElemInt:
		return "int"
	case ElemFloat:
		return "float"
	default:
		return fmt.Sprintf("ElemKind(%d)", uint8(k))
	}
}

// Extent is the symbolic length rule of one signature field. A compiler
// resolves it against the concrete shape at specialization time.
type Extent uint8

const (
	// ExtentScalar is a single value.
	ExtentScalar Extent = iota
	// ExtentRowsPlusOne is rows+1 entries (row-compressed boundaries).
	ExtentRowsPlusOne
	// ExtentColsPlusOne is cols+1 entries (column-compressed boundaries).
	ExtentColsPlusOne
	// ExtentNNZ is one entry per stored element.
	ExtentNNZ
	// ExtentTriangle is n*(n-1)/2 entries (strict upper triangle).
	ExtentTriangle
	// ExtentNodes is one entry per node.
	ExtentNodes
)

// String implements fmt.Stringer.
func (e Extent) String() string {
	switch e {
	case ExtentScalar:
		return "scalar"
	case ExtentRowsPlusOne:
		return "rows+1"
	case ExtentColsPlusOne:
		return "cols+1"
	case ExtentNNZ:
		return "nnz"
	case ExtentTriangle:
		return "n*(n-1)/2"
	case ExtentNodes:
		return "nodes"
	default:
		return fmt.Sprintf("Extent(%d)", uint8(e))
	}
}

// Field is one typed, extent-ruled slot of a container layout.
type Field struct {
	Name   string
	Elem   ElemKind
	Extent Extent
}

// Signature is the ordered field layout of one container kind.
type Signature struct {
	Kind   string
	Fields []Field
}

// Container kind names resolvable through SignatureFor.
const (
	KindCSR        = "csr"
	KindCSC        = "csc"
	KindCOO        = "coo"
	KindTriangular = "triangular"
	KindGraph      = "graph"
	KindBipartite  = "bipartite"
)

// CSRSignature describes the compressed-sparse-row container. Every call
// returns a fresh value; callers may edit it freely.
func CSRSignature() Signature {
	return Signature{
		Kind: KindCSR,
		Fields: []Field{
			{Name: "rows", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "cols", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "indptr", Elem: ElemInt, Extent: ExtentRowsPlusOne},
			{Name: "indices", Elem: ElemInt, Extent: ExtentNNZ},
			{Name: "data", Elem: ElemFloat, Extent: ExtentNNZ},
		},
	}
}

// CSCSignature describes the compressed-sparse-column container: the same
// slots as CSR with the boundary field following columns.
func CSCSignature() Signature {
	return Signature{
		Kind: KindCSC,
		Fields: []Field{
			{Name: "rows", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "cols", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "indptr", Elem: ElemInt, Extent: ExtentColsPlusOne},
			{Name: "indices", Elem: ElemInt, Extent: ExtentNNZ},
			{Name: "data", Elem: ElemFloat, Extent: ExtentNNZ},
		},
	}
}

// COOSignature describes the coordinate-triple container.
func COOSignature() Signature {
	return Signature{
		Kind: KindCOO,
		Fields: []Field{
			{Name: "rows", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "cols", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "row_indices", Elem: ElemInt, Extent: ExtentNNZ},
			{Name: "col_indices", Elem: ElemInt, Extent: ExtentNNZ},
			{Name: "data", Elem: ElemFloat, Extent: ExtentNNZ},
		},
	}
}

// TriangularSignature describes the strict-upper half-matrix.
func TriangularSignature() Signature {
	return Signature{
		Kind: KindTriangular,
		Fields: []Field{
			{Name: "order", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "data", Elem: ElemFloat, Extent: ExtentTriangle},
		},
	}
}

// GraphSignature describes the adjacency wrapper: a square CSR plus the
// node-attribute vector.
func GraphSignature() Signature {
	s := CSRSignature()
	s.Kind = KindGraph
	s.Fields = append(s.Fields, Field{Name: "attributes", Elem: ElemFloat, Extent: ExtentNodes})

	return s
}

// BipartiteSignature describes the all-pairs wrapper: a Triangular
// half-matrix plus the node-attribute vector.
func BipartiteSignature() Signature {
	return Signature{
		Kind: KindBipartite,
		Fields: []Field{
			{Name: "order", Elem: ElemInt, Extent: ExtentScalar},
			{Name: "pairs", Elem: ElemFloat, Extent: ExtentTriangle},
			{Name: "attributes", Elem: ElemFloat, Extent: ExtentNodes},
		},
	}
}

// SignatureFor resolves a container kind name to its layout.
// Unknown kinds are ErrUnknownKind.
func SignatureFor(kind string) (Signature, error) {
	switch kind {
	case KindCSR:
		return CSRSignature(), nil
	case KindCSC:
		return CSCSignature(), nil
	case KindCOO:
		return COOSignature(), nil
	case KindTriangular:
		return TriangularSignature(), nil
	case KindGraph:
		return GraphSignature(), nil
	case KindBipartite:
		return BipartiteSignature(), nil
	default:
		return Signature{}, fmt.Errorf("kernel.SignatureFor: %q: %w", kind, ErrUnknownKind)
	}
}
