// Package config loads fluid-queue scenario definitions from YAML,
// mirroring the teacher's InputParameters package but describing a
// phase set and mesh instead of a 2D compressible-flow case.
package config

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/fluidq/frap"
	"github.com/notargets/fluidq/model"
	"github.com/notargets/fluidq/utils"
)

// Scenario is the YAML-serialisable description of a discretised fluid
// queue: a phase set, a mesh, and the scheme-specific parameters needed
// to build one of the two.
type Scenario struct {
	Title string `yaml:"Title"`

	Rates     []float64 `yaml:"Rates"`
	T         [][]float64 `yaml:"T"`
	LwrMember []bool    `yaml:"LwrMember"`
	UprMember []bool    `yaml:"UprMember"`
	PLwr      [][]float64 `yaml:"PLwr,omitempty"`
	PUpr      [][]float64 `yaml:"PUpr,omitempty"`

	Nodes  []float64 `yaml:"Nodes"`
	P      int       `yaml:"PolynomialOrder"`
	Scheme string    `yaml:"Scheme"` // "DG", "FRAP", or "FV"

	FRAPFamily string  `yaml:"FRAPFamily,omitempty"` // "Erlang" (also the default when empty); other families are rejected
	FRAPRate   float64 `yaml:"FRAPRate,omitempty"`

	MaxIterations int     `yaml:"MaxIterations"`
	FinalTime     float64 `yaml:"FinalTime"`
}

// Parse unmarshals YAML scenario data into s.
func (s *Scenario) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// Print writes a human-readable summary of the scenario, in the
// teacher's terse key/value style.
func (s *Scenario) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", s.Title)
	fmt.Printf("%d\t\t\t= phases\n", len(s.Rates))
	fmt.Printf("[%s]\t\t\t= Scheme\n", s.Scheme)
	fmt.Printf("%d\t\t\t= PolynomialOrder\n", s.P)
	fmt.Printf("%d\t\t\t= cells\n", len(s.Nodes)-1)
	keys := make([]int, len(s.Rates))
	for i := range s.Rates {
		keys[i] = i
	}
	sort.Ints(keys)
	for _, i := range keys {
		fmt.Printf("phase[%d]: rate=%8.5f lwr=%v upr=%v\n", i, s.Rates[i], s.LwrMember[i], s.UprMember[i])
	}
}

// BuildQueue converts the scenario into a model.DiscretisedFluidQueue.
func (s *Scenario) BuildQueue() (model.DiscretisedFluidQueue, error) {
	n := len(s.Rates)
	T := utils.NewMatrix(n, n)
	for i, row := range s.T {
		for j, v := range row {
			T.Set(i, j, v)
		}
	}

	var pLwr, pUpr utils.Matrix
	if s.PLwr != nil {
		pLwr = toMatrix(s.PLwr)
	}
	if s.PUpr != nil {
		pUpr = toMatrix(s.PUpr)
	}

	phases, err := model.NewPhaseSet(s.Rates, T, s.LwrMember, s.UprMember, pLwr, pUpr)
	if err != nil {
		return model.DiscretisedFluidQueue{}, err
	}

	scheme, err := parseScheme(s.Scheme)
	if err != nil {
		return model.DiscretisedFluidQueue{}, err
	}

	var frapParams *model.FRAPParams
	if scheme == model.FRAP {
		p, err := s.buildFRAPParams()
		if err != nil {
			return model.DiscretisedFluidQueue{}, err
		}
		frapParams = p
	}

	mesh, err := model.NewMesh(s.Nodes, s.P, scheme, frapParams)
	if err != nil {
		return model.DiscretisedFluidQueue{}, err
	}

	return model.NewDiscretisedFluidQueue(phases, mesh)
}

func (s *Scenario) buildFRAPParams() (*model.FRAPParams, error) {
	var params frap.Params
	switch s.FRAPFamily {
	case "", "Erlang":
		rate := s.FRAPRate
		if rate == 0 {
			rate = 1.0
		}
		params = frap.Erlang(s.P, rate)
	default:
		return nil, fmt.Errorf("config: unknown FRAP family %q", s.FRAPFamily)
	}
	return &model.FRAPParams{
		Entry: params.Entry, S: params.S, ExitRate: params.ExitRate, D: params.D,
	}, nil
}

func parseScheme(s string) (model.SchemeTag, error) {
	switch s {
	case "DG":
		return model.DG, nil
	case "FRAP":
		return model.FRAP, nil
	case "FV":
		return model.FV, nil
	default:
		return 0, fmt.Errorf("config: unknown scheme %q", s)
	}
}

func toMatrix(rows [][]float64) utils.Matrix {
	n := len(rows)
	m := utils.NewMatrix(n, n)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}
