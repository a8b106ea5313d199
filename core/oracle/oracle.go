// core/oracle/oracle.go
package oracle

import (
	"math"

	"rnamoip-core/energy"
	"rnamoip-core/seq"
)

// Oracle evaluates Gibbs free energies for the loop classes the partition
// function recurrences need (spec.md §4.C). It holds no mutable state beyond
// the sequence and parameter table it was built from; every method is a
// pure function of its arguments. A closing pair whose bases are not one
// of the six tabulated pair types (PairOther) gets an infinite free energy,
// i.e. a Boltzmann weight of zero.
type Oracle struct {
	Seq    *seq.Sequence
	Params *energy.Params
}

// New builds an Oracle over a normalized sequence and an immutable parameter
// table.
func New(s *seq.Sequence, p *energy.Params) *Oracle {
	return &Oracle{Seq: s, Params: p}
}

func baseIndex(b seq.Base) int {
	if b > seq.BaseU {
		return 0 // BaseN (an unresolved residue) falls back to the BaseA slot
	}
	return int(b)
}

// Gpenalty is the AT/AU terminal penalty applied when (i,j) closes on an
// AU or UA pair.
func (o *Oracle) Gpenalty(i, j int) float64 {
	pt := o.Seq.PairType(i, j)
	if pt.IsAT() {
		return o.Params.AtPenalty
	}
	return 0
}

// Gloop extrapolates the generic loop-length energy beyond the tabulated
// range using the 1.75*RT*ln(size/30) rule (spec.md §4.C).
func (o *Oracle) Gloop(l int) float64 {
	if l <= 0 {
		return 0
	}
	if l <= 30 {
		return o.Params.Interior37[l-1]
	}
	return o.Params.Interior37[29] + o.Params.LoopGreater30*math.Log(float64(l)/30.0)
}

func (o *Oracle) ghlSizeTerm(size int) float64 {
	if size <= 30 {
		return o.Params.Hairpin37[size-1]
	}
	return o.Params.Hairpin37[29] + o.Params.LoopGreater30*math.Log(float64(size)/30.0)
}

func (o *Oracle) bulgeSizeTerm(size int) float64 {
	if size <= 30 {
		return o.Params.Bulge37[size-1]
	}
	return o.Params.Bulge37[29] + o.Params.LoopGreater30*math.Log(float64(size)/30.0)
}

// GILMismatchCtx returns the context-specific interior-loop mismatch term for
// the closing pair (i,j) with unpaired neighbors (k,l).
func (o *Oracle) GILMismatchCtx(i, j, k, l int) float64 {
	pt := o.Seq.PairType(i, j)
	if pt == seq.PairOther {
		return math.Inf(1)
	}
	return o.Params.MismatchInterior37[baseIndex(o.Seq.BaseAt(k))][baseIndex(o.Seq.BaseAt(l))][pt]
}

// GILMismatch is the context-free fallback form used when the neighboring
// bases are not both resolvable on one side (mirrors RNA::GIL_mismatch(i,j)
// with BASE_N placeholders).
func (o *Oracle) GILMismatch(i, j int) float64 {
	pt := o.Seq.PairType(i, j)
	if pt == seq.PairOther {
		return math.Inf(1)
	}
	return o.Params.MismatchInterior37[0][0][pt]
}

// GILAsymmetry is the size+asymmetry component of a generic (non-tabulated)
// interior loop (spec.md §4.C, GIL_asymmetry).
func (o *Oracle) GILAsymmetry(l1, l2 int) float64 {
	diff := l1 - l2
	if diff < 0 {
		diff = -diff
	}
	m := l1
	if l2 < m {
		m = l2
	}
	idx := m
	if idx > 4 {
		idx = 4
	}
	if idx < 1 {
		idx = 1
	}
	penalty := float64(diff) * o.Params.AsymmetryPenalty[idx-1]
	if penalty > o.Params.MaxAsymmetry {
		penalty = o.Params.MaxAsymmetry
	}
	return o.Gloop(l1+l2) + penalty
}

// GHL is the hairpin loop free energy for a closing pair (i,j), spec.md
// §4.C. Requires j-i-1 (the hairpin size) to be >= 3.
func (o *Oracle) GHL(i, j int) float64 {
	size := j - i - 1
	if o.Seq.PairType(i, j) == seq.PairOther {
		return math.Inf(1)
	}
	e := o.ghlSizeTerm(size)

	polyC := true
	for k := i + 1; k < j; k++ {
		if o.Seq.BaseAt(k) != seq.BaseC {
			polyC = false
			break
		}
	}

	switch {
	case size == 3:
		e += o.Gpenalty(i, j)
		e += o.triloopBonus(i, j)
		if polyC {
			e += o.Params.PolyCPenalty
		}
		if o.Seq.BaseAt(i+1) == seq.BaseG && o.Seq.BaseAt(i+2) == seq.BaseG && o.Seq.BaseAt(j-1) == seq.BaseG {
			e += o.Params.HairpinGGG
		}
	case size == 4:
		e += o.tloopBonus(i, j)
		e += o.Params.MismatchHairpin37[baseIndex(o.Seq.BaseAt(i+1))][baseIndex(o.Seq.BaseAt(j-1))][o.Seq.PairType(i, j)]
		if polyC {
			e += o.Params.PolyCSlope*float64(size) + o.Params.PolyCInt
		}
	default:
		e += o.Params.MismatchHairpin37[baseIndex(o.Seq.BaseAt(i+1))][baseIndex(o.Seq.BaseAt(j-1))][o.Seq.PairType(i, j)]
		if polyC {
			e += o.Params.PolyCSlope*float64(size) + o.Params.PolyCInt
		}
	}
	return e
}

func (o *Oracle) triloopBonus(i, j int) float64 {
	key := [5]seq.Base{o.Seq.BaseAt(i), o.Seq.BaseAt(i + 1), o.Seq.BaseAt(i + 2), o.Seq.BaseAt(j - 1), o.Seq.BaseAt(j)}
	return o.Params.Triloop37[key]
}

func (o *Oracle) tloopBonus(i, j int) float64 {
	key := [6]seq.Base{o.Seq.BaseAt(i), o.Seq.BaseAt(i + 1), o.Seq.BaseAt(i + 2), o.Seq.BaseAt(j - 2), o.Seq.BaseAt(j - 1), o.Seq.BaseAt(j)}
	return o.Params.Tloop37[key]
}

// GIL is the interior-loop (incl. stack/bulge/interior dispatch) free
// energy between the outer closing pair (i,j) and the inner closing pair
// (h,m), spec.md §4.C. When pk is true the result is scaled by the
// pseudoknot stack/interior span constants.
func (o *Oracle) GIL(i, h, m, j int, pk bool) float64 {
	if o.Seq.PairType(i, j) == seq.PairOther || o.Seq.PairType(h, m) == seq.PairOther {
		return math.Inf(1)
	}
	l1 := h - i - 1
	l2 := j - m - 1
	size := l1 + l2
	var e float64

	switch {
	case size == 0:
		e = o.Params.Stack37[o.Seq.PairType(i, j)][o.Seq.PairType(h, m)]
		if pk {
			e *= o.Params.PKStackSpan
		}
		return e

	case l1 == 0 || l2 == 0:
		e = o.bulgeSizeTerm(size)
		if size == 1 {
			e += o.Params.Stack37[o.Seq.PairType(i, j)][o.Seq.PairType(h, m)]
			e -= o.Params.SaltCorrection
		} else {
			e += o.Gpenalty(i, j)
			e += o.Gpenalty(h, m)
		}

	default: // l1 > 0 && l2 > 0: interior loop
		asym := l1 - l2
		if asym < 0 {
			asym = -asym
		}
		switch {
		case asym > 1 || size > 4:
			e = o.GILAsymmetry(l1, l2)
			switch {
			case l1 > 1 && l2 > 1:
				e += o.GILMismatchCtx(m, h, m+1, h-1)
				e += o.GILMismatchCtx(i, j, i+1, j-1)
			default: // l1 == 1 || l2 == 1
				e += o.GILMismatch(m, h)
				e += o.GILMismatch(i, j)
			}
		case l1 == 1 && l2 == 1:
			e = o.Params.Int11_37[o.Seq.PairType(i, j)][o.Seq.PairType(h, m)][baseIndex(o.Seq.BaseAt(i+1))][baseIndex(o.Seq.BaseAt(j-1))]
		case l1 == 2 && l2 == 2:
			e = o.Params.Int22_37[o.Seq.PairType(i, j)][o.Seq.PairType(h, m)][baseIndex(o.Seq.BaseAt(i+1))][baseIndex(o.Seq.BaseAt(j-1))][baseIndex(o.Seq.BaseAt(i+2))][baseIndex(o.Seq.BaseAt(j-2))]
		case l1 == 1 && l2 == 2:
			e = o.Params.Int21_37[o.Seq.PairType(i, j)][baseIndex(o.Seq.BaseAt(j-2))][baseIndex(o.Seq.BaseAt(i+1))][o.Seq.PairType(h, m)][baseIndex(o.Seq.BaseAt(j-1))]
		case l1 == 2 && l2 == 1:
			e = o.Params.Int21_37[o.Seq.PairType(m, h)][baseIndex(o.Seq.BaseAt(i+1))][baseIndex(o.Seq.BaseAt(j-1))][o.Seq.PairType(j, i)][baseIndex(o.Seq.BaseAt(i+2))]
		}
	}

	if pk {
		e *= o.Params.PKInteriorSpan
	}
	return e
}
