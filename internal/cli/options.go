// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
)

// Options holds all rnamoip-fold CLI flags.
type Options struct {
	// Sequence input (mutually exclusive)
	Sequence     string
	SequenceFile string

	// Model
	Theta       float64
	LambdaMin   float64
	LambdaMax   float64
	Pseudoknots bool
	Fast        bool
	MotifsFile  string

	// Output
	Output     string // "text" | "json"
	ConfigFile string

	Version bool

	// Explicit records which flag names the user actually passed on the
	// command line (via fs.Visit), as opposed to flags left at their
	// registered default. internal/app/cli.go consults this to apply the
	// "config overrides flag defaults, explicit flags override config"
	// precedence documented on --config.
	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: RNA secondary-structure/motif-insertion Pareto predictor

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Sequence, "sequence", "", "inline RNA sequence [*]")
	fs.StringVar(&opt.SequenceFile, "sequence-file", "", "FASTA file with a single sequence [*]")

	fs.Float64Var(&opt.Theta, "theta", 0.01, "minimum posterior pairing probability to model [0.01]")
	fs.Float64Var(&opt.LambdaMin, "lambda-min", 0, "epsilon-constraint lower bound for objective 1 (motif coverage) [0]")
	fs.Float64Var(&opt.LambdaMax, "lambda-max", 0, "epsilon-constraint upper bound for objective 1 (motif coverage), 0 = unbounded [0]")
	fs.BoolVar(&opt.Pseudoknots, "pseudoknots", false, "additionally compute the pseudoknot-aware partition function and report its Q(0,n-1) [false]")
	fs.BoolVar(&opt.Fast, "fast", true, "use the O(N^3)/O(N^5) partition-function recurrences [true]")
	fs.StringVar(&opt.MotifsFile, "motifs-file", "", "TSV of id,score,start1,end1[,start2,end2...] motif insertion sites")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML configuration file (overrides flag defaults, overridden by flags set explicitly)")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opt.Explicit[f.Name] = true
	})
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	usingInline := opt.Sequence != ""
	usingFile := opt.SequenceFile != ""
	switch {
	case usingInline && usingFile:
		return opt, errors.New("--sequence conflicts with --sequence-file")
	case !usingInline && !usingFile:
		return opt, errors.New("provide --sequence or --sequence-file")
	}
	if opt.Theta < 0 || opt.Theta > 1 {
		return opt, errors.New("--theta must be within [0, 1]")
	}
	if opt.LambdaMax > 0 && opt.LambdaMax < opt.LambdaMin {
		return opt, errors.New("--lambda-max must be >= --lambda-min when set")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
