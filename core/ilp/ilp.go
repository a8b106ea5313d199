// core/ilp/ilp.go
package ilp

import (
	"fmt"

	"rnamoip-core/motif"
	"rnamoip-core/partition"
)

// Sense is a linear constraint's comparison operator.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

// VarKind distinguishes the two decision-variable families spec.md §3
// names: base-pair indicators y(u,v) and motif-component indicators
// C(x,j).
type VarKind int

const (
	VarPair VarKind = iota
	VarComponent
)

// Variable describes one 0/1 decision variable.
type Variable struct {
	Kind VarKind
	Name string
	// U, V identify a VarPair's endpoints (U < V).
	U, V int
	// MotifIdx, CompIdx identify a VarComponent's (x, j) indices.
	MotifIdx, CompIdx int
}

// Constraint is a single linear inequality/equality sum(coeff*var) <=/>=/== RHS.
type Constraint struct {
	Name   string
	Coeffs map[int]float64
	Sense  Sense
	RHS    float64
}

// Model is a solver-agnostic bounded 0/1 linear program: every Variable is
// implicitly bounded in [0,1] and boolean, matching IloNumVar::Bool in the
// original engine. Model carries both of spec.md's objectives so a caller
// can run the epsilon-constraint method over either.
type Model struct {
	Vars        []Variable
	Constraints []Constraint
	Obj1        map[int]float64 // motif-coverage objective (spec.md obj1)
	Obj2        map[int]float64 // expected-accuracy objective (spec.md obj2)

	n        int
	yuvIndex [][]int // yuvIndex[u][v] = var index, or -1
	cIndex   [][]int // cIndex[motifIdx][compIdx] = var index
}

// PairVar returns the decision-variable index for y(u,v) (either order),
// or -1 if (u,v) is not a modeled pair.
func (m *Model) PairVar(u, v int) int {
	if u > v {
		u, v = v, u
	}
	if u < 0 || u >= len(m.yuvIndex) || v < 0 || v >= len(m.yuvIndex[u]) {
		return -1
	}
	return m.yuvIndex[u][v]
}

// ComponentVar returns the decision-variable index for C(motifIdx,compIdx),
// or -1 if out of range.
func (m *Model) ComponentVar(motifIdx, compIdx int) int {
	if motifIdx < 0 || motifIdx >= len(m.cIndex) {
		return -1
	}
	row := m.cIndex[motifIdx]
	if compIdx < 0 || compIdx >= len(row) {
		return -1
	}
	return row[compIdx]
}

func admissible(n, u, v int) bool {
	a, b := u, v
	if b < a {
		a, b = b, a
	}
	if b-a < 4 {
		return false
	}
	if a > n-7 {
		return false
	}
	if b >= n {
		return false
	}
	return true
}

// Build constructs the full decision-variable set, the six constraint
// families, and both objectives, mirroring MOIP::MOIP and
// MOIP::define_problem_constraints. pb is the base-pair posterior
// probability table; a pair (u,v) only gets a y(u,v) variable when it is
// admissible and pb.Get(u,v) exceeds theta.
func Build(n int, pb *partition.Matrix, sites []motif.Motif, theta float64) (*Model, error) {
	m := &Model{n: n, Obj1: map[int]float64{}, Obj2: map[int]float64{}}

	m.yuvIndex = make([][]int, n)
	for u := 0; u < n; u++ {
		m.yuvIndex[u] = make([]int, n)
		for v := range m.yuvIndex[u] {
			m.yuvIndex[u][v] = -1
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 4; v < n; v++ {
			if !admissible(n, u, v) {
				continue
			}
			if pb.Get(u, v) <= theta {
				continue
			}
			idx := len(m.Vars)
			m.Vars = append(m.Vars, Variable{Kind: VarPair, Name: fmt.Sprintf("y%d,%d", u, v), U: u, V: v})
			m.yuvIndex[u][v] = idx
			m.Obj2[idx] = pb.Get(u, v)
		}
	}

	m.cIndex = make([][]int, len(sites))
	firstComponentVar := make([]int, len(sites))
	for x, site := range sites {
		m.cIndex[x] = make([]int, len(site.Components))
		for j := range site.Components {
			idx := len(m.Vars)
			m.Vars = append(m.Vars, Variable{
				Kind: VarComponent, Name: fmt.Sprintf("C%d,%d", x, j),
				MotifIdx: x, CompIdx: j,
			})
			m.cIndex[x][j] = idx
			if j == 0 {
				firstComponentVar[x] = idx
				m.Obj1[idx] = float64(site.Score)
			}
		}
	}

	m.defineConstraints(sites)
	return m, nil
}

func (m *Model) addConstraint(name string, coeffs map[int]float64, sense Sense, rhs float64) {
	if len(coeffs) == 0 {
		return
	}
	m.Constraints = append(m.Constraints, Constraint{Name: name, Coeffs: coeffs, Sense: sense, RHS: rhs})
}

// defineConstraints builds the six constraint families from
// MOIP::define_problem_constraints.
func (m *Model) defineConstraints(sites []motif.Motif) {
	n := m.n

	// (1) at most one pairing per nucleotide.
	for u := 0; u < n; u++ {
		c := map[int]float64{}
		for v := 0; v < u; v++ {
			if idx := m.PairVar(v, u); idx >= 0 {
				c[idx] += 1
			}
		}
		for v := u + 4; v < n; v++ {
			if idx := m.PairVar(u, v); idx >= 0 {
				c[idx] += 1
			}
		}
		if len(c) > 1 {
			m.addConstraint(fmt.Sprintf("onepair_%d", u), c, LE, 1)
		}
	}

	// (2) forbid lonely basepairs, scanning both pairing directions.
	for u := 0; u < n; u++ {
		c := map[int]float64{}
		count := 0
		for v := u; v < n; v++ {
			if idx := m.PairVar(u-1, v); idx >= 0 {
				c[idx] += 1
			}
		}
		for v := u + 1; v < n; v++ {
			if idx := m.PairVar(u, v); idx >= 0 {
				c[idx] -= 1
				count++
			}
		}
		for v := u + 2; v < n; v++ {
			if idx := m.PairVar(u+1, v); idx >= 0 {
				c[idx] += 1
			}
		}
		if count > 0 {
			m.addConstraint(fmt.Sprintf("nolonely_%d", u), c, GE, 0)
		}
	}
	for v := 2; v < n; v++ {
		c := map[int]float64{}
		count := 0
		for u := 0; u <= v-2; u++ {
			if idx := m.PairVar(u, v-1); idx >= 0 {
				c[idx] += 1
			}
		}
		for u := 0; u <= v-1; u++ {
			if idx := m.PairVar(u, v); idx >= 0 {
				c[idx] -= 1
				count++
			}
		}
		for u := 0; u <= v; u++ {
			if idx := m.PairVar(u, v+1); idx >= 0 {
				c[idx] += 1
			}
		}
		if count > 0 {
			m.addConstraint(fmt.Sprintf("nolonely_rev_%d", v), c, GE, 0)
		}
	}

	// (3) forbid basepairs strictly inside an included motif component.
	for x, site := range sites {
		for j, comp := range site.Components {
			c := map[int]float64{}
			kxi := float64(comp.K())
			cvar := m.ComponentVar(x, j)
			c[cvar] += kxi - 2
			count := 0
			for u := comp.First + 1; u < comp.Last-1; u++ {
				for v := 0; v < n; v++ {
					if idx := m.PairVar(u, v); idx >= 0 {
						c[idx] += 1
						count++
					}
				}
			}
			if count > 1 {
				m.addConstraint(fmt.Sprintf("nointernal_%d_%d", x, j), c, LE, kxi-2)
			}
		}
	}

	// (4) forbid two inserted components from overlapping a residue.
	for u := 0; u < n; u++ {
		c := map[int]float64{}
		nterms := 0
		for x, site := range sites {
			for j, comp := range site.Components {
				if u >= comp.First && u <= comp.Last {
					c[m.ComponentVar(x, j)] += 1
					nterms++
				}
			}
		}
		if nterms > 1 {
			m.addConstraint(fmt.Sprintf("nooverlap_%d", u), c, LE, 1)
		}
	}

	// (5) a multi-component motif is inserted fully or not at all.
	for x, site := range sites {
		if len(site.Components) == 1 {
			continue
		}
		c := map[int]float64{}
		for j := 1; j < len(site.Components); j++ {
			c[m.ComponentVar(x, j)] += 1
		}
		c[m.ComponentVar(x, 0)] -= float64(len(site.Components) - 1)
		m.addConstraint(fmt.Sprintf("completeness_%d", x), c, EQ, 0)
	}

	// (6) force the basepair closing consecutive components / the whole motif.
	for x, site := range sites {
		first, last := site.Components[0], site.Components[len(site.Components)-1]
		c := map[int]float64{m.ComponentVar(x, 0): 1}
		if idx := m.PairVar(first.First, last.Last); idx >= 0 {
			c[idx] -= 1
		}
		m.addConstraint(fmt.Sprintf("boundary_%d_0", x), c, LE, 0)

		for j := 0; j+1 < len(site.Components); j++ {
			a, b := site.Components[j], site.Components[j+1]
			cj := map[int]float64{m.ComponentVar(x, j): 1}
			if idx := m.PairVar(a.Last, b.First); idx >= 0 {
				cj[idx] -= 1
			}
			m.addConstraint(fmt.Sprintf("boundary_%d_%d", x, j+1), cj, LE, 0)
		}
	}
}
