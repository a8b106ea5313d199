// Package motifio loads the CLI's motif insertion-site file, grounded on
// ipcr-core/primer.LoadTSV's line-oriented-file idiom (comment/blank-line
// skipping, one error per bad line) around core/motif.ParseBayesPairingLine.
// It is not a catalog-format parser (RNA 3D Motif Atlas, Rfam, CaRNAval);
// those remain out of scope per spec.md §1.
package motifio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"rnamoip-core/motif"
)

// LoadTSV reads a file of "id,score,start1,end1[,start2,end2...]" lines,
// one motif insertion site per line, into candidate Motifs.
func LoadTSV(path string) ([]motif.Motif, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var out []motif.Motif
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		m, err := motif.ParseBayesPairingLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
