package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rnamoip/internal/cli"
	"rnamoip/internal/config"
)

func TestRunCLIFoldsInlineSequenceAsText(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := RunCLI([]string{"--sequence", "GGGAAAC", "--theta", "0"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Fatalf("expected text output")
	}
}

func TestRunCLIFoldsInlineSequenceAsJSON(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := RunCLI([]string{"--sequence", "GGGAAAC", "--theta", "0", "--output", "json"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errBuf.String())
	}
	if !bytes.Contains(out.Bytes(), []byte(`"sequence"`)) {
		t.Fatalf("expected JSON output, got %s", out.String())
	}
}

func TestRunCLIReportsFlagErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := RunCLI([]string{}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if errBuf.Len() == 0 {
		t.Fatalf("expected an error message on stderr")
	}
}

func TestRunCLIVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := RunCLI([]string{"--version"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Fatalf("expected version text on stdout")
	}
}

func parseOpts(t *testing.T, argv []string) cli.Options {
	t.Helper()
	fs := cli.NewFlagSet("rnamoip-fold")
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	return opts
}

func TestBuildRequestConfigOverridesUnsetFlag(t *testing.T) {
	opts := parseOpts(t, []string{"--sequence", "GGGAAAC"})
	cfg := &config.Config{}
	cfg.Fold.Theta = 0.2
	cfg.Fold.Pseudoknots = true
	cfg.Fold.MotifFile = "sites.tsv"

	req := buildRequest(opts, cfg)
	if req.Theta != 0.2 {
		t.Fatalf("Theta = %v, want 0.2 from config", req.Theta)
	}
	if !req.Pseudoknots {
		t.Fatalf("Pseudoknots = false, want true from config")
	}
	if req.MotifsFile != "sites.tsv" {
		t.Fatalf("MotifsFile = %q, want %q from config", req.MotifsFile, "sites.tsv")
	}
}

func TestBuildRequestExplicitFlagOverridesConfig(t *testing.T) {
	opts := parseOpts(t, []string{"--sequence", "GGGAAAC", "--theta", "0.5"})
	cfg := &config.Config{}
	cfg.Fold.Theta = 0.2

	req := buildRequest(opts, cfg)
	if req.Theta != 0.5 {
		t.Fatalf("Theta = %v, want 0.5 from the explicit flag", req.Theta)
	}
}

func TestBuildRequestCarriesWorkerAndEnergyConfigWithNoFlagEquivalent(t *testing.T) {
	opts := parseOpts(t, []string{"--sequence", "GGGAAAC"})
	cfg := &config.Config{}
	cfg.Worker.Threads = 4
	cfg.Energy.ParamsPath = "params.txt"

	req := buildRequest(opts, cfg)
	if req.WorkerThreads != 4 {
		t.Fatalf("WorkerThreads = %d, want 4", req.WorkerThreads)
	}
	if req.ParamsPath != "params.txt" {
		t.Fatalf("ParamsPath = %q, want %q", req.ParamsPath, "params.txt")
	}
}

func TestRunCLIUsesConfigFileThetaWhenFlagNotGiven(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rnamoip.yaml")
	if err := os.WriteFile(path, []byte("fold:\n  theta: 0.3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errBuf bytes.Buffer
	code := RunCLI([]string{"--sequence", "GGGAAAC", "--config", path}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Fatalf("expected text output")
	}
}
