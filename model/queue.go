package model

import "github.com/notargets/fluidq/generator/generr"

// DiscretisedFluidQueue pairs a PhaseSet with the Mesh it is discretised
// over. It owns both by value, following the small-immutable-value-
// aggregate convention used throughout this module.
type DiscretisedFluidQueue struct {
	Phases PhaseSet
	Mesh   Mesh
}

// NewDiscretisedFluidQueue checks only that the phase set is non-empty
// and the mesh has at least one cell; all other validation is left to
// NewPhaseSet/NewMesh, and no cross-check between the two is made.
func NewDiscretisedFluidQueue(phases PhaseSet, mesh Mesh) (DiscretisedFluidQueue, error) {
	if phases.N() == 0 {
		return DiscretisedFluidQueue{}, generr.NewDomain("NewDiscretisedFluidQueue", "phase set must be non-empty")
	}
	if mesh.NumCells() == 0 {
		return DiscretisedFluidQueue{}, generr.NewDomain("NewDiscretisedFluidQueue", "mesh must have at least one cell")
	}
	return DiscretisedFluidQueue{Phases: phases, Mesh: mesh}, nil
}

// N, K, P are convenience accessors mirroring spec.md's index-mapping
// parameters.
func (dq DiscretisedFluidQueue) N() int { return dq.Phases.N() }
func (dq DiscretisedFluidQueue) K() int { return dq.Mesh.NumCells() }
func (dq DiscretisedFluidQueue) P() int { return dq.Mesh.P }
