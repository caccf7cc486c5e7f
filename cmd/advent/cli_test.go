package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2020/internal/config"
)

// setupWorkspace points the global config at a temp input dir and resets
// the flag globals the commands read.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.InputDir = filepath.Join(dir, "inputs")
	cfg.LedgerPath = filepath.Join(dir, "advent.db")
	inputPath = ""
	solvePart = 0
	recordRuns = false
	if err := os.MkdirAll(cfg.InputDir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeInput(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(cfg.InputDir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestSolveCmd(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, "day1.txt", "1721\n979\n366\n299\n675\n1456\n")

	cmd, buf := newTestCmd()
	if err := runSolve(cmd, []string{"1"}); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}

	lines := strings.Fields(buf.String())
	if len(lines) != 2 {
		t.Fatalf("expected 2 answers, got %v", lines)
	}
	if lines[0] != "514579" || lines[1] != "241861950" {
		t.Errorf("wrong answers: %v", lines)
	}
}

func TestSolveCmdSinglePart(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, "day2.txt", "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n")
	solvePart = 2

	cmd, buf := newTestCmd()
	if err := runSolve(cmd, []string{"2"}); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1" {
		t.Errorf("expected answer 1, got %q", got)
	}
}

func TestSolveCmdUnknownDay(t *testing.T) {
	setupWorkspace(t)

	cmd, _ := newTestCmd()
	if err := runSolve(cmd, []string{"25"}); err == nil {
		t.Fatal("expected error for unregistered day")
	}
	if err := runSolve(cmd, []string{"one"}); err == nil {
		t.Fatal("expected error for non-numeric day")
	}
}

func TestSolveCmdMissingInput(t *testing.T) {
	setupWorkspace(t)

	cmd, _ := newTestCmd()
	if err := runSolve(cmd, []string{"1"}); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestAllCmd(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, "day1.txt", "1721\n979\n366\n299\n675\n1456\n")
	// Other days are left without inputs; they should show as errors
	// without failing the command.

	cmd, buf := newTestCmd()
	if err := runAll(cmd, []string{}); err != nil {
		t.Fatalf("runAll failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "514579") {
		t.Errorf("day 1 answer missing from table:\n%s", out)
	}
	if !strings.Contains(out, "Passport Processing") {
		t.Errorf("day 4 row missing from table:\n%s", out)
	}
}

func TestAllCmdRecordsLedger(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, "day1.txt", "1721\n979\n366\n299\n675\n1456\n")
	recordRuns = true

	cmd, _ := newTestCmd()
	if err := runAll(cmd, []string{}); err != nil {
		t.Fatalf("runAll failed: %v", err)
	}

	histCmd, buf := newTestCmd()
	historyDay, historyLimit = 0, 20
	if err := runHistory(histCmd, []string{}); err != nil {
		t.Fatalf("runHistory failed: %v", err)
	}
	if !strings.Contains(buf.String(), "514579") {
		t.Errorf("recorded answer missing from history:\n%s", buf.String())
	}
}

func TestHistoryCmdEmpty(t *testing.T) {
	setupWorkspace(t)

	cmd, buf := newTestCmd()
	historyDay, historyLimit = 0, 20
	if err := runHistory(cmd, []string{}); err != nil {
		t.Fatalf("runHistory failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no recorded runs") {
		t.Errorf("expected empty-history message, got:\n%s", buf.String())
	}
}
