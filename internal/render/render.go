// Package render turns core results into diagnostic text: a −log10(Pb) grid
// per spec.md §6, and a tabular Pareto-frontier summary.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"rnamoip-core/posterior"
	"rnamoip-core/structure"

	"rnamoip/pkg/api"
)

// RenderLog10Grid renders the −log10(Pb) grid spec.md §6 describes: each
// cell holds round(−log10(Pb(u,v))), blank when Pb is negligible. theta, if
// > 0, marks cells that cleared the modeling threshold with a trailing "*".
func RenderLog10Grid(seq string, post *posterior.Result, theta float64) string {
	n := post.N
	var b strings.Builder

	b.WriteString("    ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "%4c", seq[j])
	}
	b.WriteByte('\n')

	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%3c ", seq[i])
		for j := 0; j < n; j++ {
			v, ok := post.Log10Cell(i, j)
			if !ok {
				b.WriteString("    ")
				continue
			}
			cell := strconv.Itoa(v)
			if theta > 0 && post.Pb.Get(i, j) > theta {
				cell += "*"
			}
			fmt.Fprintf(&b, "%4s", cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderTable renders one row per frontier member, with its base pairs in one column,
// modeled on sfletc-dsRNAmax's use of tablewriter for its scored-kmer report.
func RenderTable(frontier []structure.SecondaryStructure) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"structure", "motif coverage", "expected accuracy", "base pairs"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, s := range frontier {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(s.Obj1, 'f', 3, 64),
			strconv.FormatFloat(s.Obj2, 'f', 3, 64),
			pairsString(s),
		})
	}
	table.Render()
	return buf.String()
}

func pairsString(s structure.SecondaryStructure) string {
	parts := make([]string, 0, len(s.BasePairs))
	for _, bp := range s.BasePairs {
		parts = append(parts, fmt.Sprintf("%d-%d", bp.U, bp.V))
	}
	return strings.Join(parts, ",")
}

// ToAPIFoldResult converts the internal frontier into the stable wire
// schema, mirroring internal/output/json.go's ToAPIProduct.
func ToAPIFoldResult(sequence string, frontier []structure.SecondaryStructure, warnings []string) api.FoldResultV1 {
	out := api.FoldResultV1{Sequence: sequence, Warnings: warnings}
	for _, s := range frontier {
		v1 := api.SecondaryStructureV1{Obj1: s.Obj1, Obj2: s.Obj2}
		for _, bp := range s.BasePairs {
			v1.BasePairs = append(v1.BasePairs, api.BasePairV1{U: bp.U, V: bp.V})
		}
		for _, m := range s.Motifs {
			v1.Motifs = append(v1.Motifs, api.MotifInsertionV1{SiteIndex: m.SiteIndex})
		}
		out.Frontier = append(out.Frontier, v1)
	}
	return out
}
