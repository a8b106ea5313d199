// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"os"

	"rnamoip-core/energy"
	"rnamoip-core/motif"
	"rnamoip-core/posterior"
	"rnamoip-core/rna"
	"rnamoip-core/structure"

	"rnamoip/internal/ids"
	"rnamoip/internal/logging"
	"rnamoip/internal/motifio"
	"rnamoip/internal/seqio"
)

// Request is the single programmatic entrypoint's input: everything a fold
// run needs, gathered from CLI flags or a config file by the caller.
type Request struct {
	Sequence     string
	SequenceFile string

	Theta       float64
	LambdaMin   float64
	LambdaMax   float64
	Pseudoknots bool
	Fast        bool
	MotifsFile  string

	// WorkerThreads and ParamsPath have no CLI flag equivalent; they only
	// ever come from a loaded Config (internal/app/cli.go).
	WorkerThreads int
	ParamsPath    string
}

// Result is the single programmatic entrypoint's output.
type Result struct {
	RunID     string
	Sequence  string
	Posterior *posterior.Result
	Frontier  []structure.SecondaryStructure
	Warnings  []string
}

// Run wires sequence input, the core fold pipeline, and structured logging
// together: the root-module equivalent of ipcr's internal/app.RunContext,
// but returning a structured Result instead of writing text and an exit
// code directly, since the CLI and any future caller share this entrypoint.
func Run(ctx context.Context, req Request, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := ids.NewRunID()
	logger = logger.With(logging.String("run_id", runID))

	sequence, err := resolveSequence(req)
	if err != nil {
		return nil, err
	}

	var motifs []motif.Motif
	if req.MotifsFile != "" {
		motifs, err = motifio.LoadTSV(req.MotifsFile)
		if err != nil {
			return nil, fmt.Errorf("app: loading motifs file: %w", err)
		}
	}

	var params *energy.Params
	if req.ParamsPath != "" {
		params, err = loadParams(req.ParamsPath)
		if err != nil {
			return nil, fmt.Errorf("app: loading energy parameters: %w", err)
		}
	}

	logger.Info("fold started",
		logging.Int("sequence_length", len(sequence)),
		logging.Float64("theta", req.Theta),
		logging.Int("motif_sites", len(motifs)),
		logging.Bool("fast", req.Fast),
		logging.Bool("pseudoknots", req.Pseudoknots),
		logging.Int("worker_threads", req.WorkerThreads),
	)

	fr, err := rna.Fold(ctx, rna.Options{
		Sequence:      sequence,
		Params:        params,
		FastPartition: req.Fast,
		Pseudoknots:   req.Pseudoknots,
		Theta:         req.Theta,
		MotifSites:    motifs,
		LambdaMin:     req.LambdaMin,
		LambdaMax:     req.LambdaMax,
		WorkerThreads: req.WorkerThreads,
	})
	if err != nil {
		logger.Error("fold failed", logging.Err(err))
		return nil, err
	}

	for _, w := range fr.Warnings {
		logger.Warn("sequence normalization", logging.String("warning", w))
	}
	if req.Pseudoknots {
		logger.Info("pseudoknot partition function",
			logging.Float64("pseudoknot_q", fr.PseudoknotQ))
	}
	logger.Info("fold completed", logging.Int("frontier_size", len(fr.Frontier)))

	return &Result{
		RunID:     runID,
		Sequence:  fr.Sequence.String(),
		Posterior: fr.Posterior,
		Frontier:  fr.Frontier,
		Warnings:  fr.Warnings,
	}, nil
}

func loadParams(path string) (*energy.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return energy.LoadFromReader(f)
}

func resolveSequence(req Request) (string, error) {
	if req.Sequence != "" {
		return req.Sequence, nil
	}
	rec, err := seqio.ReadFirst(req.SequenceFile)
	if err != nil {
		return "", fmt.Errorf("app: reading sequence file: %w", err)
	}
	return rec.Seq, nil
}
