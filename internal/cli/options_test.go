// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestInlineSequenceOK(t *testing.T) {
	o := mustParse(t, "--sequence", "GGGGCAAAAGCCCC")
	if o.Sequence != "GGGGCAAAAGCCCC" || o.SequenceFile != "" {
		t.Errorf("want inline sequence only, got %+v", o)
	}
	if o.Theta != 0.01 {
		t.Errorf("want default theta 0.01, got %v", o.Theta)
	}
}

func TestSequenceFileOK(t *testing.T) {
	o := mustParse(t, "--sequence-file", "seq.fa")
	if o.SequenceFile != "seq.fa" || o.Sequence != "" {
		t.Errorf("want sequence file only, got %+v", o)
	}
}

func TestErrorMutualExclusion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--sequence", "GGG", "--sequence-file", "seq.fa",
	})
	if err == nil {
		t.Fatalf("expected mutual-exclusion error")
	}
}

func TestErrorNoSequenceInput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{})
	if err == nil {
		t.Fatalf("expected error with no sequence input")
	}
}

func TestErrorThetaOutOfRange(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--sequence", "GGG", "--theta", "1.5"})
	if err == nil {
		t.Fatalf("expected error for out-of-range theta")
	}
}

func TestErrorLambdaMaxBelowMin(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--sequence", "GGG", "--lambda-min", "5", "--lambda-max", "1",
	})
	if err == nil {
		t.Fatalf("expected error when lambda-max < lambda-min")
	}
}

func TestErrorInvalidOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--sequence", "GGG", "--output", "xml"})
	if err == nil {
		t.Fatalf("expected error for invalid --output")
	}
}
