// core/posterior/posterior.go
package posterior

import (
	"math"

	"rnamoip-core/oracle"
	"rnamoip-core/partition"
)

// minRenderedProbability is the smallest Pb(u,v) rendered by Log10Cell;
// anything below it is indistinguishable from numerical noise at double
// precision and is reported as blank, per spec.md §6.
const minRenderedProbability = 5e-10

// Result holds the three matrices the backward pass fills in (spec.md
// §4 posterior component): P (probability of reaching a span unpaired),
// Pm (probability of reaching a span inside a multiloop), and Pb (the
// base-pair posterior probability table callers actually want).
type Result struct {
	N  int
	P  *partition.Matrix
	Pm *partition.Matrix
	Pb *partition.Matrix
}

// Compute runs the posterior back-recursion over a freshly computed
// non-pseudoknotted partition function (spec.md §4, RNA::compute_posterior_noPK_ON4).
// fast selects the O(N^3) forward pass (partition.NoPKFast) over the
// O(N^4) one (partition.NoPKSlow); the backward pass itself is identical
// either way since it only consumes the resulting Q/Qb/Qm tables.
func Compute(o *oracle.Oracle, fast bool) *Result {
	var tbl *partition.Tables
	if fast {
		tbl = partition.NoPKFast(o)
	} else {
		tbl = partition.NoPKSlow(o)
	}
	return FromTables(o, tbl)
}

// FromTables runs the backward pass against an already-computed forward
// table, letting callers reuse a partition function they computed once.
//
// Unlike the forward recurrences, this pass is run serially rather than
// parallelized per length: many enclosing spans of the same length can
// simultaneously accumulate into the same inner (d,e) cell (a base pair
// nested inside several different candidate enclosures), so a per-length
// parallel-for here would race on Pb/Pm writes. The original engine's
// OpenMP annotation over this loop has that same race; this port avoids
// it rather than reproduce it.
func FromTables(o *oracle.Oracle, tbl *partition.Tables) *Result {
	n := o.Seq.Len()
	r := &Result{N: n, P: partition.NewMatrix(n), Pm: partition.NewMatrix(n), Pb: partition.NewMatrix(n)}
	if n == 0 {
		return r
	}
	a1, a2, a3 := o.Params.A1, o.Params.A2, o.Params.A3

	r.P.Set(0, n-1, 1.0)

	for l := n; l >= 1; l-- {
		for i := 0; i <= n-l; i++ {
			j := i + l - 1

			for d := i; d <= j-4; d++ {
				for e := d + 4; e <= j; e++ {
					var dP float64
					if d > i {
						dP = r.P.Get(i, j) * tbl.Q.Get(i, d-1) * tbl.Qb.Get(d, e) / tbl.Q.Get(i, j)
						r.P.Add(i, d-1, dP)
					} else {
						dP = r.P.Get(i, j) * tbl.Qb.Get(d, e) / tbl.Q.Get(i, j)
					}
					r.Pb.Add(d, e, dP)

					if qmIJ := tbl.Qm.Get(i, j); qmIJ > 0 {
						r.Pb.Add(d, e, r.Pm.Get(i, j)*partition.Boltzmann(a2+a3*float64(d-i+j-e))*tbl.Qb.Get(d, e)/qmIJ)

						var dPm float64
						if d > i {
							dPm = r.Pm.Get(i, j) * tbl.Qm.Get(i, d-1) * tbl.Qb.Get(d, e) * partition.Boltzmann(a2+a3*float64(j-e)) / qmIJ
							r.Pm.Add(i, d-1, dPm)
						} else {
							dPm = r.Pm.Get(i, j) * tbl.Qb.Get(d, e) * partition.Boltzmann(a2+a3*float64(j-e)) / qmIJ
						}
						r.Pb.Add(d, e, dPm)
					}
				}
			}

			if qbIJ := tbl.Qb.Get(i, j); qbIJ > 0 {
				for d := i + 1; d <= j-5; d++ {
					for e := d + 4; e <= j-1; e++ {
						r.Pb.Add(d, e, r.Pb.Get(i, j)*tbl.Qb.Get(d, e)*partition.Boltzmann(o.GIL(i, d, e, j, false))/qbIJ)

						dP := r.Pb.Get(i, j) * tbl.Qm.Get(i+1, d-1) * tbl.Qb.Get(d, e) * partition.Boltzmann(a1+2*a2+float64(j-e-1)*a3) / qbIJ
						r.Pm.Add(i+1, d-1, dP)
						r.Pb.Add(d, e, dP)
					}
				}
			}
		}
	}

	return r
}

// Log10Cell computes the diagnostic textual-rendering value spec.md §6
// describes for one cell: round(-log10(Pb(u,v))), with ok=false for cells
// below minRenderedProbability (omitted from the grid entirely).
func (r *Result) Log10Cell(u, v int) (value int, ok bool) {
	p := r.Pb.Get(u, v)
	if p < minRenderedProbability {
		return 0, false
	}
	return int(math.Round(-math.Log10(p))), true
}
