// core/partition/tables.go
package partition

// Tables holds the three matrices produced by the non-pseudoknotted
// recurrences (spec.md §4.D.1-2): Q (unconstrained partition function over
// a span), Qb (span closed by a base pair), Qm (span inside a multiloop,
// at least one helix).
type Tables struct {
	N  int
	Q  *Matrix
	Qb *Matrix
	Qm *Matrix
}

func newTables(n int) *Tables {
	return &Tables{N: n, Q: NewMatrix(n), Qb: NewMatrix(n), Qm: NewMatrix(n)}
}

// PKTables holds the five matrices and five rank-4 tensors produced by the
// pseudoknotted recurrences (spec.md §4.D.3): Q, Qb, Qm as above, plus Qp
// (span folded as a closed pseudoknot) and Qz (span usable as pseudoknot
// "filler"), and the gap-matrix family Qg/Qgl/Qgr/Qgls/Qgrs used to build
// Qp out of two interleaved generic gapped structures.
type PKTables struct {
	N    int
	Q    *Matrix
	Qb   *Matrix
	Qm   *Matrix
	Qp   *Matrix
	Qz   *Matrix
	Qg   *Tensor4
	Qgl  *Tensor4
	Qgr  *Tensor4
	Qgls *Tensor4
	Qgrs *Tensor4
}

func newPKTables(n int) *PKTables {
	return &PKTables{
		N: n,
		Q: NewMatrix(n), Qb: NewMatrix(n), Qm: NewMatrix(n), Qp: NewMatrix(n), Qz: NewMatrix(n),
		Qg: NewTensor4(n), Qgl: NewTensor4(n), Qgr: NewTensor4(n), Qgls: NewTensor4(n), Qgrs: NewTensor4(n),
	}
}
