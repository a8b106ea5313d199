// core/partition/rt.go
package partition

import "math"

// RT is the gas constant times 37C in kcal/mol (kB*Avogadro*(273.15+37)),
// the Boltzmann scale used by every Boltzmann-weighted recurrence in this
// package (spec.md §3, rna.cpp's RT = kB*AVOGADRO*(ZERO_C_IN_KELVIN+37.0)).
const RT = 0.6163207755

// boltzmann converts a free energy in kcal/mol to its Boltzmann weight
// exp(-dG/RT).
func boltzmann(dG float64) float64 {
	return math.Exp(-dG / RT)
}

// Boltzmann is the exported form of boltzmann, for packages (posterior,
// ilp) that need the same weight outside this package's recurrences.
func Boltzmann(dG float64) float64 {
	return boltzmann(dG)
}
