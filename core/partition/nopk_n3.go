// core/partition/nopk_n3.go
package partition

import "rnamoip-core/oracle"

// NoPKFast computes the non-pseudoknotted partition function in O(N^3)
// time (spec.md §4.D.2), directly mirroring
// RNA::compute_partition_function_noPK_ON3. It only ever returns Q, Qb,
// Qm to the caller (via Tables) even though it maintains five additional
// working matrices (Qs, Qms, Qx, Qx1, Qx2) internally, matching the
// original's return shape.
func NoPKFast(o *oracle.Oracle) *Tables {
	n := o.Seq.Len()
	t := newTables(n)
	if n == 0 {
		return t
	}
	a1, a2, a3 := o.Params.A1, o.Params.A2, o.Params.A3

	qs := NewMatrix(n)
	qms := NewMatrix(n)
	qx := NewMatrix(n)
	qx1 := NewMatrix(n)
	qx2 := NewMatrix(n)

	for i := 0; i < n-1; i++ {
		t.Q.Set(i, i+1, 1.0)
	}
	for l := 3; l < 5 && l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			t.Q.Set(i, i+l-1, 1.0)
		}
	}

	for l := 5; l <= n; l++ {
		qx, qx1, qx2 = qx1, qx2, NewMatrix(n)

		workers := defaultWorkers(n - l + 1)
		parallelFor(n-l+1, workers, func(i int) {
			j := i + l - 1

			// Qx: extensions with one side fixed at L=4 and the other >= 4,
			// plus seeding next round's Qx2 with the loop-length delta.
			if l >= 15 {
				d := i + 5
				l1 := d - i - 1
				for e := d + 4; e <= j-5; e++ {
					l2 := j - e - 1
					qx.Add(i, l1+l2, t.Qb.Get(d, e)*boltzmann(o.GILAsymmetry(l1, l2)+o.GILMismatchCtx(d, e, d+1, e-1)))
				}
				e := j - 5
				l2 := j - e - 1
				for d2 := i + 6; d2 <= e-4; d2++ {
					l1d := d2 - i - 1
					qx.Add(i, l1d+l2, t.Qb.Get(d2, e)*boltzmann(o.GILAsymmetry(l1d, l2)+o.GILMismatchCtx(d2, e, d2+1, e-1)))
				}
				if i > 0 && j != n {
					for s := 8; s <= l-7; s++ {
						qx2.Set(i-1, s+2, qx.Get(i, s)*boltzmann(o.Gloop(s+2)-o.Gloop(s)))
					}
				}
			}

			// Qb recursion.
			qb := boltzmann(o.GHL(i, j))
			for s := 8; s <= l-7; s++ {
				qb += qx.Get(i, s) * boltzmann(o.GILMismatchCtx(i, j, i+1, j-1))
			}
			for d := i + 1; d <= i+4; d++ {
				eMin := d + 4
				if j-4 > eMin {
					eMin = j - 4
				}
				for e := eMin; e <= j-1; e++ {
					qb += t.Qb.Get(d, e) * boltzmann(o.GIL(i, d, e, j, false))
				}
			}
			for d := i + 1; d <= i+4; d++ {
				for e := d + 4; e <= j-5; e++ {
					qb += t.Qb.Get(d, e) * boltzmann(o.GIL(i, d, e, j, false))
				}
			}
			for e := j - 4; e <= j-1; e++ {
				for d := i + 5; d <= e-4; d++ {
					qb += boltzmann(o.GIL(i, d, e, j, false)) * t.Qb.Get(d, e)
				}
			}
			for d := i + 6; d <= j-5; d++ {
				qb += t.Qm.Get(i+1, d-1) * qms.Get(d, j-1) * boltzmann(a1+a2)
			}
			t.Qb.Set(i, j, qb)

			// Qs recursion: all rightmost base pairs involving i.
			var qsv float64
			for d := i + 4; d <= j; d++ {
				qsv += t.Qb.Get(i, d)
			}
			qs.Set(i, j, qsv)

			// Qms recursion: same, but weighted for use inside a multiloop.
			var qmsv float64
			for d := i + 4; d <= j; d++ {
				qmsv += t.Qb.Get(i, d) * boltzmann(a2+a3*float64(j-d))
			}
			qms.Set(i, j, qmsv)

			// Qm recursion.
			var qm float64
			for d := i; d <= j-4; d++ {
				qm += qms.Get(d, j) * boltzmann(a3*float64(d-i))
				if d-i > 0 {
					qm += qms.Get(d, j) * t.Qm.Get(i, d-1)
				}
			}
			t.Qm.Set(i, j, qm)

			// Q recursion.
			q := 1.0
			for d := i; d <= j-4; d++ {
				if d-i > 0 {
					q += t.Q.Get(i, d-1) * qs.Get(d, j)
				} else {
					q += qs.Get(d, j)
				}
			}
			t.Q.Set(i, j, q)
		})
	}

	return t
}
