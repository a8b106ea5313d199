// core/seq/seq.go
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence is returned by Validate when a sequence cannot be
// folded: empty, or entirely unresolved residues. A sequence too short to
// admit any base pair is not rejected; it folds to an empty frontier.
var ErrInvalidSequence = errors.New("seq: invalid sequence")

// Base is one of the five alphabet symbols a residue can take after
// normalization. Unknown input characters collapse to BaseN.
type Base byte

const (
	BaseA Base = iota
	BaseC
	BaseG
	BaseU
	BaseN
)

func (b Base) String() string {
	switch b {
	case BaseA:
		return "A"
	case BaseC:
		return "C"
	case BaseG:
		return "G"
	case BaseU:
		return "U"
	default:
		return "N"
	}
}

func baseOf(c byte) Base {
	switch c {
	case 'A', 'a':
		return BaseA
	case 'C', 'c':
		return BaseC
	case 'G', 'g':
		return BaseG
	case 'U', 'u', 'T', 't':
		return BaseU
	default:
		return BaseN
	}
}

// PairType is one of the seven classes a pair (i,j) can fall into, derived
// from the ordered pair of bases via a fixed lookup.
type PairType byte

const (
	PairAU PairType = iota
	PairUA
	PairCG
	PairGC
	PairGU
	PairUG
	PairOther
)

// lookupPair mirrors RNA::pair_map in the original engine: only the six
// canonical Watson-Crick/wobble orderings resolve to a named type.
func lookupPair(a, b Base) PairType {
	switch {
	case a == BaseA && b == BaseU:
		return PairAU
	case a == BaseU && b == BaseA:
		return PairUA
	case a == BaseC && b == BaseG:
		return PairCG
	case a == BaseG && b == BaseC:
		return PairGC
	case a == BaseG && b == BaseU:
		return PairGU
	case a == BaseU && b == BaseG:
		return PairUG
	default:
		return PairOther
	}
}

// Sequence is an ordered, normalized RNA sequence.
type Sequence struct {
	raw      string
	bases    []Base
	warnings []string
}

// New normalizes s (T->U, case folded) and records warnings for thymine
// substitution and unknown characters, mirroring RNA::RNA's constructor.
func New(s string) *Sequence {
	seq := &Sequence{raw: strings.ToUpper(s)}
	seq.bases = make([]Base, len(seq.raw))
	containsT := false
	var unknown []byte
	for i := 0; i < len(seq.raw); i++ {
		c := seq.raw[i]
		if c == 'T' {
			containsT = true
		}
		b := baseOf(c)
		if b == BaseN && c != 'N' {
			unknown = append(unknown, c)
		}
		seq.bases[i] = b
	}
	if containsT {
		seq.warnings = append(seq.warnings, "thymines automatically replaced by uraciles")
	}
	if len(unknown) > 0 {
		seq.warnings = append(seq.warnings, "unknown characters in input sequence ignored: "+string(unknown))
	}
	return seq
}

// Len returns the number of residues.
func (s *Sequence) Len() int { return len(s.bases) }

// BaseAt returns the normalized base at position i.
func (s *Sequence) BaseAt(i int) Base { return s.bases[i] }

// Warnings returns non-fatal normalization notices (T->U, unknown chars).
func (s *Sequence) Warnings() []string { return s.warnings }

// String returns the normalized (post T->U) sequence.
func (s *Sequence) String() string {
	b := make([]byte, len(s.bases))
	for i, base := range s.bases {
		b[i] = base.String()[0]
	}
	return string(b)
}

// Validate reports whether the sequence is foldable: non-empty and not
// entirely composed of unresolved residues. Shorter sequences are left to
// the partition-function recurrences, which simply admit no pairs.
func (s *Sequence) Validate() error {
	if s.Len() == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	if s.AllN() {
		return fmt.Errorf("%w: sequence has no resolvable residues", ErrInvalidSequence)
	}
	return nil
}

// AllN reports whether every residue normalized to BaseN.
func (s *Sequence) AllN() bool {
	for _, b := range s.bases {
		if b != BaseN {
			return false
		}
	}
	return len(s.bases) > 0
}

// PairType classifies the ordered pair (i,j) of residues.
func (s *Sequence) PairType(i, j int) PairType {
	return lookupPair(s.bases[i], s.bases[j])
}

// Admissible reports whether (i,j), i<j, satisfies the structural distance
// and boundary constraints independent of any probability threshold:
// j-i >= 4 and i <= n-7 (spec.md §3, RNA::allowed_basepair's distance/bound
// half of the check, 0-indexed).
func (s *Sequence) Admissible(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	n := s.Len()
	if j-i < 4 {
		return false
	}
	if i > n-7 {
		return false
	}
	if j >= n {
		return false
	}
	return true
}

// IsWatsonCrick reports whether the pair type is one of the four canonical
// Watson-Crick orderings (AU/UA/CG/GC), excluding GU/UG wobbles and OTHER.
// Used by the pseudoknot recurrences (spec.md §4.D.3) which restrict certain
// transitions to canonical pairs.
func (pt PairType) IsWatsonCrick() bool {
	switch pt {
	case PairAU, PairUA, PairCG, PairGC:
		return true
	default:
		return false
	}
}

// IsAT reports whether the pair type closes with an AT/AU terminal penalty.
func (pt PairType) IsAT() bool {
	return pt == PairAU || pt == PairUA
}
