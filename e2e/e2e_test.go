//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
)

// binDir holds the restyle binary built once for all scripts.
var binDir string

func TestMain(m *testing.M) {
	os.Exit(runWithBinary(m))
}

func runWithBinary(m *testing.M) int {
	dir, err := os.MkdirTemp("", "restyle-e2e-*")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	//nolint:gosec // Static arguments
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "restyle"), "./cmd/restyle")
	build.Dir = ".."
	build.Stdout, build.Stderr = os.Stdout, os.Stderr
	if err := build.Run(); err != nil {
		panic("building restyle: " + err.Error())
	}

	binDir = dir
	return m.Run()
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
			env.Setenv("HOME", filepath.Join(env.WorkDir, ".home"))
			return os.MkdirAll(env.Getenv("HOME"), 0o750)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"touch": touch,
		},
	})
}

// touch sets the modification time of each named file to now, making it
// newer than outputs written by earlier commands.
func touch(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! touch")
	}
	if len(args) == 0 {
		ts.Fatalf("usage: touch file...")
	}

	now := time.Now()
	for _, name := range args {
		ts.Check(os.Chtimes(ts.MkAbs(name), now, now))
	}
}
