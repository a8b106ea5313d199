// core/motif/motif.go
package motif

import (
	"fmt"
	"strconv"
	"strings"
)

// Source identifies where a candidate motif insertion site came from
// (spec.md §3 "Motif catalog"), mirroring Motif::source_ in the original
// engine.
type Source int

const (
	SourceRNA3DMotif Source = iota
	SourceRNAMotifAtlas
	SourceCarnaval
)

func (s Source) String() string {
	switch s {
	case SourceRNA3DMotif:
		return "rna3dmotif"
	case SourceRNAMotifAtlas:
		return "rnamotifatlas"
	case SourceCarnaval:
		return "carnaval"
	default:
		return "unknown"
	}
}

// Component is one contiguous stretch [First, Last] (0-indexed, inclusive)
// of a multi-component motif, together with its length K = Last-First+1
// (mirrors Component::k in the original).
type Component struct {
	First, Last int
}

// K returns the component's residue span length.
func (c Component) K() int { return c.Last - c.First + 1 }

// Motif is a candidate structural motif that may be inserted at a fixed
// position in the folded sequence (spec.md §3). Components are ordered
// 5'->3'; Components[0] is always "the first component" referenced by the
// completeness and closing-pair constraints.
type Motif struct {
	Components []Component
	Score      int
	Reversed   bool
	Source     Source
	AtlasID    string
	PDBID      string
	CarnavalID string
}

// Identifier returns the catalog key this motif was loaded under,
// whichever of AtlasID/PDBID/CarnavalID is populated for its Source.
func (m Motif) Identifier() string {
	switch m.Source {
	case SourceRNAMotifAtlas:
		return m.AtlasID
	case SourceCarnaval:
		return m.CarnavalID
	default:
		return m.PDBID
	}
}

// PosString renders the component boundaries, e.g. "12-18,25-31", the Go
// analogue of Motif::pos_string used in diagnostic output.
func (m Motif) PosString() string {
	parts := make([]string, len(m.Components))
	for i, c := range m.Components {
		parts[i] = fmt.Sprintf("%d-%d", c.First, c.Last)
	}
	return strings.Join(parts, ",")
}

// ParseBayesPairingLine parses one line of a BayesPairing-style motif
// catalog: "<id>,<score>,<start1>,<end1>[,<start2>,<end2>...]". A leading
// id containing "rna3dmotif" is classified as SourceRNA3DMotif (PDBID),
// otherwise SourceRNAMotifAtlas (AtlasID) — mirrors the non-jar3d branch
// of Motif::Motif(string).
func ParseBayesPairingLine(line string) (Motif, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) < 4 {
		return Motif{}, fmt.Errorf("motif: malformed catalog line: %q", line)
	}
	score, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Motif{}, fmt.Errorf("motif: bad score in %q: %w", line, err)
	}

	m := Motif{Score: score}
	if strings.Contains(tokens[0], "rna3dmotif") {
		m.Source = SourceRNA3DMotif
		m.PDBID = tokens[0]
	} else {
		m.Source = SourceRNAMotifAtlas
		m.AtlasID = tokens[0]
	}

	for i := 2; i+1 < len(tokens); i += 2 {
		start, err := strconv.Atoi(tokens[i])
		if err != nil {
			return Motif{}, fmt.Errorf("motif: bad component start in %q: %w", line, err)
		}
		end, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return Motif{}, fmt.Errorf("motif: bad component end in %q: %w", line, err)
		}
		if start >= end {
			continue
		}
		m.Components = append(m.Components, Component{First: start, Last: end})
	}
	if len(m.Components) == 0 {
		return Motif{}, fmt.Errorf("motif: no usable components in %q", line)
	}
	return m, nil
}
