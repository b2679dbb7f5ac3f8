package deploy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/cratepack/internal/filesvc"
	"github.com/unkn0wn-root/cratepack/internal/prompt"
	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// scriptPrompter answers from fixed queues and records the labels it saw.
type scriptPrompter struct {
	inputs   []string
	confirms []bool
	labels   []string
	failAt   int
}

func (s *scriptPrompter) Input(label string, o prompt.InputOpt) (string, error) {
	s.labels = append(s.labels, label)
	if s.failAt == len(s.labels) || len(s.inputs) == 0 {
		return "", prompt.ErrAborted
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	if o.Validate != nil {
		if err := o.Validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (s *scriptPrompter) Confirm(label string, def bool) (bool, error) {
	s.labels = append(s.labels, label)
	if s.failAt == len(s.labels) || len(s.confirms) == 0 {
		return false, prompt.ErrAborted
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func plainTheme() theme.Theme {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return theme.New(r)
}

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// newProject lays out a small Cargo project in a temp dir.
func newProject(t *testing.T, withLock bool) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")
	if withLock {
		writeFile(t, dir, "Cargo.lock", "# generated\nversion = 3\n")
	}
	writeFile(t, dir, "src/main.rs", "fn main() {\n    println!(\"hi\");\n}\n")
	writeFile(t, dir, "src/lib.rs", "pub fn add(a: i32, b: i32) -> i32 { a + b }\n")
	writeFile(t, dir, "src/bin/tool.rs", "fn main() {}\n")
	return dir
}

// snapshot maps every file below root to its contents.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files, err := filesvc.ListFiles(os.DirFS(root), ".", true)
	if err != nil {
		t.Fatalf("list %s: %v", root, err)
	}
	out := make(map[string]string, len(files))
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read %s: %v", p, err)
	}
	return string(data)
}

func runLines(t *testing.T, dir string, m Mode, answers ...string) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	th := plainTheme()
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	res, err := Run(Opt{
		Mode:     m,
		Dir:      dir,
		Prompter: prompt.NewLine(in, &out, th),
		Out:      &out,
		Theme:    th,
	})
	return res, out.String(), err
}
