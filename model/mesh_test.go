package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeshDG(t *testing.T) {
	nodes := []float64{0, 1, 2, 3}
	m, err := NewMesh(nodes, 3, DG, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, m.NumCells())
	w, err := m.CellWidth(1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestNewMeshRejectsNonIncreasingNodes(t *testing.T) {
	_, err := NewMesh([]float64{0, 1, 1, 3}, 2, DG, nil)
	assert.Error(t, err)
}

func TestNewMeshFVRequiresP1(t *testing.T) {
	_, err := NewMesh([]float64{0, 1, 2}, 2, FV, nil)
	assert.Error(t, err)

	m, err := NewMesh([]float64{0, 1, 2}, 1, FV, nil)
	assert.NoError(t, err)
	assert.Equal(t, FV, m.Scheme)
}

func TestNewMeshFRAPRequiresParams(t *testing.T) {
	_, err := NewMesh([]float64{0, 1, 2}, 2, FRAP, nil)
	assert.Error(t, err)

	fp := &FRAPParams{
		Entry:    []float64{1, 0},
		S:        [][]float64{{-1, 1}, {0, -1}},
		ExitRate: []float64{0, 1},
		D:        [][]float64{{1, 0}, {0, 1}},
	}
	m, err := NewMesh([]float64{0, 1, 2}, 2, FRAP, fp)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.P)
}

func TestSchemeTagString(t *testing.T) {
	assert.Equal(t, "DG", DG.String())
	assert.Equal(t, "FRAP", FRAP.String())
	assert.Equal(t, "FV", FV.String())
}
