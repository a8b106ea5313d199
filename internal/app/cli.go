// internal/app/cli.go
package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"rnamoip/internal/cli"
	"rnamoip/internal/config"
	"rnamoip/internal/logging"
	"rnamoip/internal/render"
)

// RunContext drives one rnamoip-fold invocation end to end: parse flags,
// load optional config, run the fold, render the result. Mirrors ipcr's
// internal/app.RunContext's argv-in/exit-code-out shape.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("rnamoip-fold")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			_ = outw.Flush()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		fmt.Fprintln(outw, "rnamoip-fold version dev")
		_ = outw.Flush()
		return 0
	}

	var cfg *config.Config
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	res, err := Run(parent, buildRequest(opts, cfg), logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if err := renderResult(outw, opts.Output, res); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// buildRequest merges CLI flags with a loaded Config into the Request Run
// needs, applying --config's documented precedence: a flag the user
// actually typed always wins; otherwise the config value (file, RNAMOIP_*
// env, or built-in default — config.Load/LoadFromEnv have already resolved
// that) applies. WorkerThreads and ParamsPath have no flag of their own, so
// they always come straight from cfg.
func buildRequest(opts cli.Options, cfg *config.Config) Request {
	req := Request{
		Sequence:      opts.Sequence,
		SequenceFile:  opts.SequenceFile,
		Theta:         opts.Theta,
		LambdaMin:     opts.LambdaMin,
		LambdaMax:     opts.LambdaMax,
		Pseudoknots:   opts.Pseudoknots,
		Fast:          opts.Fast,
		MotifsFile:    opts.MotifsFile,
		WorkerThreads: cfg.Worker.Threads,
		ParamsPath:    cfg.Energy.ParamsPath,
	}
	if !opts.Explicit["theta"] {
		req.Theta = cfg.Fold.Theta
	}
	if !opts.Explicit["pseudoknots"] {
		req.Pseudoknots = cfg.Fold.Pseudoknots
	}
	if !opts.Explicit["fast"] {
		req.Fast = cfg.Fold.FastPartition
	}
	if !opts.Explicit["motifs-file"] && cfg.Fold.MotifFile != "" {
		req.MotifsFile = cfg.Fold.MotifFile
	}
	return req
}

// RunCLI is the package-level convenience wrapper app.RunCLI(argv, ...) used
// by cmd/rnamoip-fold/main.go, parallel to ipcr's app.Run(argv, stdout, stderr).
func RunCLI(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func renderResult(w io.Writer, format string, res *Result) error {
	if format == "json" {
		apiResult := render.ToAPIFoldResult(res.Sequence, res.Frontier, res.Warnings)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(apiResult)
	}

	fmt.Fprintf(w, "run %s: %d candidate structures\n\n", res.RunID, len(res.Frontier))
	if res.Posterior != nil {
		fmt.Fprint(w, render.RenderLog10Grid(res.Sequence, res.Posterior, 0))
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, render.RenderTable(res.Frontier))
	return nil
}
