// core/partition/nopk_n4.go
package partition

import "rnamoip-core/oracle"

// NoPKSlow computes the non-pseudoknotted partition function in O(N^4)
// time (spec.md §4.D.1), directly mirroring
// RNA::compute_partition_function_noPK_ON4: the multiloop free energy is
// the linear approximation a1 + k*a2 + u*a3, and pseudoknots are assumed
// impossible.
func NoPKSlow(o *oracle.Oracle) *Tables {
	n := o.Seq.Len()
	t := newTables(n)
	if n == 0 {
		return t
	}
	a1, a2, a3 := o.Params.A1, o.Params.A2, o.Params.A3

	for i := 0; i < n-1; i++ {
		t.Q.Set(i, i+1, 1.0)
	}
	for l := 3; l < 5 && l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			t.Q.Set(i, i+l-1, 1.0)
		}
	}

	for l := 5; l <= n; l++ {
		workers := defaultWorkers(n - l + 1)
		parallelFor(n-l+1, workers, func(i int) {
			j := i + l - 1

			qb := boltzmann(o.GHL(i, j))
			if l >= 7 {
				for d := i + 1; d <= j-5; d++ {
					for e := d + 4; e <= j-1; e++ {
						qb += t.Qb.Get(d, e) * boltzmann(o.GIL(i, d, e, j, false))
						if d-i >= 2 {
							qb += t.Qb.Get(d, e) * t.Qm.Get(i+1, d-1) * boltzmann(a1+2*a2+float64(j-e-1)*a3)
						}
					}
				}
			}
			t.Qb.Set(i, j, qb)

			var qm float64
			for d := i; d <= j-4; d++ {
				for e := d + 4; e <= j; e++ {
					qm += t.Qb.Get(d, e) * boltzmann(a2+a3*float64(d-i+j-e))
					if d-i > 0 {
						qm += t.Qb.Get(d, e) * t.Qm.Get(i, d-1) * boltzmann(a2+a3*float64(j-e))
					}
				}
			}
			t.Qm.Set(i, j, qm)

			q := 1.0
			for d := i; d <= j-4; d++ {
				for e := d + 4; e <= j; e++ {
					if d-i > 0 {
						q += t.Q.Get(i, d-1) * t.Qb.Get(d, e)
					} else {
						q += t.Qb.Get(d, e)
					}
				}
			}
			t.Q.Set(i, j, q)
		})
	}

	return t
}
