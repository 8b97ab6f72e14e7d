package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
	"github.com/msto63/mictylish/foundation/lang/ast"
)

// run executes the command tree with a throwaway config file
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "mictylish.toml")
	content := "[log]\nlevel = \"error\"\n\n[repl]\nhistory_path = \"\"\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--config", cfg, "--color", "never"}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "let x = 1", "tokens")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	want := "LET@0..3\nIDENT(x)@4..5\nEQUAL@6..7\nINT(1)@8..9\nEOF@9..9\n"
	if out != want {
		t.Errorf("tokens output =\n%s\nwant\n%s", out, want)
	}
}

func TestTokensCommandLexError(t *testing.T) {
	_, errOut, err := run(t, "let x = @", "tokens")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(errOut, "<stdin>") {
		t.Errorf("diagnostic does not name the source:\n%s", errOut)
	}
}

func TestParseCommandText(t *testing.T) {
	out, _, err := run(t, "let mut xs = [1, \"a\", y]", "parse")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := strings.Join([]string{
		"program @0..24",
		"  let mut xs @0..24",
		"    list @13..24",
		"      int 1 @14..15",
		"      string \"a\" @17..20",
		"      var y @22..23",
		"",
	}, "\n")
	if out != want {
		t.Errorf("parse output =\n%s\nwant\n%s", out, want)
	}
}

func TestParseCommandJSON(t *testing.T) {
	out, _, err := run(t, "let x = 1", "parse", "--format", "json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var dump ast.Dump
	if err := json.Unmarshal([]byte(out), &dump); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if dump.Type != "program" || len(dump.Children) != 1 {
		t.Fatalf("dump = %+v", dump)
	}
	if let := dump.Children[0]; let.Type != "let" || let.Name != "x" {
		t.Errorf("statement = %+v", let)
	}
}

func TestParseCommandBadFormat(t *testing.T) {
	_, _, err := run(t, "let x = 1", "parse", "--format", "xml")
	if !mcerror.HasCode(err, mcerror.CodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantErr  bool
		contains string
	}{
		{"ok", "let x = 1\nlet y = x", false, "ok (2 statements)"},
		{"undefined", "let y = x", true, "name 'x' is not defined"},
		{"redefined", "let x = 1\nlet x = 2", true, "name 'x' already defined"},
		{"syntax", "let = 1", true, "<stdin>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := run(t, tt.source, "check")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			got := out
			if tt.wantErr {
				got = errOut
				if ExitCode(err) != 1 {
					t.Errorf("ExitCode = %d, want 1", ExitCode(err))
				}
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, got)
			}
		})
	}
}

func TestCheckCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.mcl")
	if err := os.WriteFile(path, []byte("let a = [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "", "check", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasPrefix(out, path+": ok") {
		t.Errorf("output = %q", out)
	}

	_, _, err = run(t, "", "check", filepath.Join(t.TempDir(), "missing.mcl"))
	if !mcerror.HasCode(err, mcerror.CodeNotFound) {
		t.Errorf("missing file err = %v, want NOT_FOUND", err)
	}
}

func TestGlobCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mcl", "a.mcl", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := run(t, "", "glob", filepath.Join(dir, "*.mcl"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	want := filepath.Join(dir, "a.mcl") + "\n" + filepath.Join(dir, "b.mcl") + "\n"
	if out != want {
		t.Errorf("glob output = %q, want %q", out, want)
	}
}

func TestExecCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, errOut, err := run(t, "", "exec", "--", "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if out != "out\n" {
		t.Errorf("stdout = %q, want %q", out, "out\n")
	}
	if !strings.Contains(errOut, "err\n") {
		t.Errorf("stderr = %q, want child stderr", errOut)
	}

	_, _, err = run(t, "", "exec", "--", "sh", "-c", "exit 3")
	if got := ExitCode(err); got != 3 {
		t.Errorf("ExitCode = %d, want 3 (err = %v)", got, err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "mictylish v") || !strings.Contains(out, "Go Version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"log level", []string{"--log-level", "loud", "check"}},
		{"color", []string{"--color", "sometimes", "check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "let x = 1", tt.args...)
			if !mcerror.HasCode(err, mcerror.CodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errReported, 1},
		{errors.New("boom"), 1},
		{&exitError{code: 3}, 3},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
