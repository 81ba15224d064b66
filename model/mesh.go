package model

import "github.com/notargets/fluidq/generator/generr"

// SchemeTag selects the spatial discretisation applied within each cell.
type SchemeTag int

const (
	// DG is the discontinuous Galerkin polynomial scheme.
	DG SchemeTag = iota
	// FRAP is the matrix-exponential (QBD-RAP) scheme.
	FRAP
	// FV is finite volume: DG pinned to P==1, with no basis construction
	// of its own. It has no lazy-generator representation.
	FV
)

func (s SchemeTag) String() string {
	switch s {
	case DG:
		return "DG"
	case FRAP:
		return "FRAP"
	case FV:
		return "FV"
	default:
		return "Unknown"
	}
}

// FRAPParams holds the matrix-exponential renewal-process parameters that
// drive the FRAP scheme's per-cell density. S is the p×p sub-generator,
// ExitRate the length-p exit-rate vector s = -S·1, Entry the length-p
// initial-distribution vector a, and D the phase-membership reflection
// matrix.
type FRAPParams struct {
	Entry    []float64
	S        [][]float64
	ExitRate []float64
	D        [][]float64
}

// Mesh is a strictly increasing sequence of K+1 nodes defining K cells,
// a per-cell basis count P, and a discretisation scheme tag.
type Mesh struct {
	Nodes      []float64
	P          int
	Scheme     SchemeTag
	FRAPParams *FRAPParams // non-nil only when Scheme == FRAP
}

// NumCells returns K, the number of cells the mesh nodes define.
func (m Mesh) NumCells() int { return len(m.Nodes) - 1 }

// CellWidth returns the width of cell k (0-based).
func (m Mesh) CellWidth(k int) (float64, error) {
	if k < 0 || k >= m.NumCells() {
		return 0, generr.NewOutOfRange("Mesh.CellWidth", k, m.NumCells()-1)
	}
	return m.Nodes[k+1] - m.Nodes[k], nil
}

// NewMesh validates strictly increasing nodes, P>=1, and (for FRAP) that
// FRAPParams is present and matches P.
func NewMesh(nodes []float64, p int, scheme SchemeTag, frapParams *FRAPParams) (Mesh, error) {
	if len(nodes) < 2 {
		return Mesh{}, generr.NewDomain("NewMesh", "mesh must have at least one cell (two nodes)")
	}
	if p < 1 {
		return Mesh{}, generr.NewDomain("NewMesh", "basis count p must be >= 1")
	}
	for k := 0; k < len(nodes)-1; k++ {
		if nodes[k+1]-nodes[k] <= 0 {
			return Mesh{}, generr.NewDomain("NewMesh", "mesh nodes must be strictly increasing")
		}
	}
	if scheme == FV && p != 1 {
		return Mesh{}, generr.NewDomain("NewMesh", "finite-volume meshes are pinned to p == 1")
	}
	if scheme == FRAP {
		if frapParams == nil {
			return Mesh{}, generr.NewDomain("NewMesh", "FRAP scheme requires FRAPParams")
		}
		if len(frapParams.Entry) != p || len(frapParams.ExitRate) != p || len(frapParams.S) != p || len(frapParams.D) != p {
			return Mesh{}, generr.NewShapeMismatch("NewMesh", p, len(frapParams.Entry))
		}
	}
	return Mesh{Nodes: nodes, P: p, Scheme: scheme, FRAPParams: frapParams}, nil
}
