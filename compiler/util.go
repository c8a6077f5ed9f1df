package compiler

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// Run writes compiled to a scratch directory and executes it with `go run`,
// returning its stdout.
func Run(ctx context.Context, compiled string) (string, error) {
	dir, err := os.MkdirTemp("", "rangex")
	if err != nil {
		return "", errors.Wrap(err, "creating scratch directory")
	}
	defer os.RemoveAll(dir)
	goTmp := filepath.Join(dir, "main.go")
	if err := os.WriteFile(goTmp, []byte(compiled), 0644); err != nil {
		return "", errors.Wrap(err, "writing compiled source")
	}

	cmd := exec.CommandContext(ctx, "go", "run", goTmp)
	cmd.Dir = dir
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return "", errors.Errorf(`%s
Go compilation of translated source failed. Translation:
------
%s
------`, errBuf.String(), compiled)
	}
	return out.String(), nil
}

// CompareLibraryToGo walks inst through the library and through its compiled
// program, and returns a diff of the two outputs (empty when they agree)
// along with the compiled source.
func CompareLibraryToGo(ctx context.Context, inst Instance, indexed bool) (string, string, error) {
	compiled, err := Compile(inst, indexed)
	if err != nil {
		return "", "", err
	}
	out, err := Run(ctx, compiled)
	if err != nil {
		return "", compiled, err
	}
	want := slices.Collect(inst.Lines(indexed))
	got := splitLines(out)
	return cmp.Diff(want, got), compiled, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
