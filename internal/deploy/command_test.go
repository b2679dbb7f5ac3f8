package deploy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/aymanbagabas/go-udiff"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/prompt"
)

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestRunGitWithLicense(t *testing.T) {
	dir := newProject(t, true)
	res, out, err := runLines(t, dir, ModeGit, "demo", "y", "n", "n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Folder != "demo" || res.TipsShown {
		t.Fatalf("unexpected result %+v", res)
	}

	snap := snapshot(t, filepath.Join(dir, "demo"))
	want := []string{".gitignore", "Cargo.lock", "Cargo.toml", "LICENSE", "README.md", "src/lib.rs", "src/main.rs"}
	if got := keys(snap); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected files %q", got)
	}
	if snap[".gitignore"] != "/target\nCargo.lock\n**/*.rs.bk\n" {
		t.Fatalf("unexpected .gitignore %q", snap[".gitignore"])
	}
	if snap["README.md"] != "# demo\n\n"+gitQuickStart {
		t.Fatalf("unexpected README:\n%s", snap["README.md"])
	}
	if snap["LICENSE"] != LicenseMIT {
		t.Fatalf("unexpected LICENSE")
	}
	if snap["Cargo.lock"] != readFile(t, filepath.Join(dir, "Cargo.lock")) {
		t.Fatalf("Cargo.lock not copied byte for byte")
	}
	if snap["src/main.rs"] != readFile(t, filepath.Join(dir, "src", "main.rs")) {
		t.Fatalf("src/main.rs not copied byte for byte")
	}
	if strings.Contains(out, "👉") {
		t.Fatalf("tips printed after declining:\n%s", out)
	}
	if !strings.HasSuffix(out, "✅ Boilerplate created at 'demo'\n") {
		t.Fatalf("missing summary line:\n%s", out)
	}
}

func TestRunAurWithTips(t *testing.T) {
	dir := newProject(t, false)
	res, out, err := runLines(t, dir, ModeAur, "pkg", "n", "n", "y")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.TipsShown {
		t.Fatalf("expected tips to be shown")
	}

	snap := snapshot(t, filepath.Join(dir, "pkg"))
	want := []string{"Cargo.toml", "PKGBUILD", "README.md", "src/lib.rs", "src/main.rs"}
	if got := keys(snap); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected files %q", got)
	}
	if snap["PKGBUILD"] != PKGBUILDTemplate {
		t.Fatalf("unexpected PKGBUILD")
	}
	if snap["README.md"] != "# pkg\n\n"+aurGuide {
		t.Fatalf("unexpected README:\n%s", snap["README.md"])
	}
	if !strings.Contains(out, "\n"+aurTips) {
		t.Fatalf("expected aur tips:\n%s", out)
	}
	if strings.Index(out, aurTips) > strings.Index(out, "✅ Boilerplate created at 'pkg'") {
		t.Fatalf("tips must precede the summary line:\n%s", out)
	}
}

func TestRunWithExtras(t *testing.T) {
	dir := newProject(t, true)
	writeFile(t, dir, "config.json", "{\"debug\":true}\n")
	writeFile(t, dir, ".env/local", "TOKEN=x\n")

	res, out, err := runLines(t, dir, ModeGit, "x", "y", "y", "config.json, .env, nope.txt", "n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := []string{
		"✅ Included: config.json",
		"✅ Included: .env",
		"⚠️  Skipped: 'nope.txt' not found",
	}
	last := -1
	for _, l := range lines {
		i := strings.Index(out, l+"\n")
		if i < 0 || i < last {
			t.Fatalf("expected %q in order:\n%s", l, out)
		}
		last = i
	}
	if got := res.Report.Skipped(); !reflect.DeepEqual(got, []string{"nope.txt"}) {
		t.Fatalf("unexpected skipped %q", got)
	}

	snap := snapshot(t, filepath.Join(dir, "x"))
	if snap["config.json"] != "{\"debug\":true}\n" || snap[".env/local"] != "TOKEN=x\n" {
		t.Fatalf("extras not copied: %q", keys(snap))
	}
	if _, ok := snap["nope.txt"]; ok {
		t.Fatalf("missing extra must not be created")
	}
}

func TestRunWithoutLockfile(t *testing.T) {
	dir := newProject(t, false)
	if _, _, err := runLines(t, dir, ModeGit, "demo", "n", "n", "n"); err != nil {
		t.Fatalf("run: %v", err)
	}
	snap := snapshot(t, filepath.Join(dir, "demo"))
	if _, ok := snap["Cargo.lock"]; ok {
		t.Fatalf("Cargo.lock must not appear")
	}
	if _, ok := snap["LICENSE"]; ok {
		t.Fatalf("LICENSE must not appear when declined")
	}
	if _, ok := snap["src/bin/tool.rs"]; ok {
		t.Fatalf("nested src directories must not be copied")
	}
}

func TestRunTwiceIsStable(t *testing.T) {
	dir := newProject(t, true)
	writeFile(t, dir, "config.json", "{}\n")
	answers := []string{"demo", "y", "y", "config.json", "n"}

	if _, _, err := runLines(t, dir, ModeGit, answers...); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := snapshot(t, filepath.Join(dir, "demo"))
	if _, _, err := runLines(t, dir, ModeGit, answers...); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := snapshot(t, filepath.Join(dir, "demo"))

	if !reflect.DeepEqual(keys(first), keys(second)) {
		t.Fatalf("file set changed: %q vs %q", keys(first), keys(second))
	}
	for name, a := range first {
		if b := second[name]; a != b {
			t.Fatalf("%s changed between runs:\n%s", name, udiff.Unified("first/"+name, "second/"+name, a, b))
		}
	}
}

func TestRunAbortLeavesNoTrace(t *testing.T) {
	dir := newProject(t, true)
	before := snapshot(t, dir)

	var out bytes.Buffer
	th := plainTheme()
	_, err := Run(Opt{
		Mode:     ModeGit,
		Dir:      dir,
		Prompter: prompt.NewLine(strings.NewReader("demo\ny\n"), &out, th),
		Out:      &out,
		Theme:    th,
	})
	if !errdef.Is(err, errdef.CodePrompt) || !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected aborted prompt error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "demo")); !os.IsNotExist(err) {
		t.Fatalf("deployment folder must not exist, err=%v", err)
	}
	if after := snapshot(t, dir); !reflect.DeepEqual(before, after) {
		t.Fatalf("project changed after abort")
	}
}

func TestRunMissingManifestIsFatal(t *testing.T) {
	dir := newProject(t, false)
	if err := os.Remove(filepath.Join(dir, "Cargo.toml")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	res, out, err := runLines(t, dir, ModeGit, "demo", "n", "n", "n")
	if !errdef.Is(err, errdef.CodeFilesystem) {
		t.Fatalf("expected filesystem error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
	if strings.Contains(out, "Boilerplate created") {
		t.Fatalf("summary printed after failure:\n%s", out)
	}
	if res.TipsShown {
		t.Fatalf("tips offered after failure")
	}
	if _, err := os.Stat(filepath.Join(dir, "demo", "src")); err != nil {
		t.Fatalf("partial state is kept: %v", err)
	}
}

func TestRunRejectsUnknownModeBeforePrompting(t *testing.T) {
	p := &scriptPrompter{}
	_, err := Run(Opt{Mode: Mode("svn"), Dir: t.TempDir(), Prompter: p, Out: &bytes.Buffer{}})
	if !errdef.Is(err, errdef.CodeUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if len(p.labels) != 0 {
		t.Fatalf("no question may be asked, got %q", p.labels)
	}
}
