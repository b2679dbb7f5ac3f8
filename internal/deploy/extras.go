package deploy

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
)

// includeExtra resolves one user named entry against the live tree and
// copies it to <folder>/<name>. Missing or unusable entries are reported and
// skipped; copy failures are logged and recorded on the inclusion. Only a
// failure to write progress is returned.
func (e *executor) includeExtra(folder, name string) (Inclusion, error) {
	in := Inclusion{Name: name, Outcome: OutcomeSkippedMissing}

	if name == "" {
		return in, e.skipped(name, "not found")
	}
	src := e.abs(name)
	info, err := e.fs.Stat(src)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.log.Warn("stat extra", "name", name, "err", err)
		}
		return in, e.skipped(name, "not found")
	}

	op := Op{Kind: OpCopy, Src: name, Path: path.Join(folder, filepath.ToSlash(name))}
	switch {
	case info.Mode().IsRegular():
	case info.IsDir():
		op.Kind = OpCopyTree
	default:
		return in, e.skipped(name, "is not a file or directory")
	}
	if !within(folder, op.Path) {
		e.log.Warn("extra lands outside the deployment folder", "name", name, "path", op.Path)
	}
	e.log.Debug("apply", "op", op.String())

	in.Outcome = OutcomeIncluded
	in.Err = e.copyExtra(op, src)
	if in.Err != nil {
		in.Err = errdef.Wrap(errdef.CodeExtra, in.Err, "include %s", name)
		e.log.Warn("extra copied with errors", "name", name, "err", in.Err)
	}
	return in, e.report(e.th.Success.Render, "✅ Included: "+name)
}

func (e *executor) copyExtra(op Op, src string) error {
	dst := e.abs(op.Path)
	if filepath.Clean(src) == dst {
		return nil
	}
	if op.Kind == OpCopy {
		if err := e.fs.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
			return err
		}
	}
	return e.applyCore(op)
}

// within reports whether the slash path p is folder or lies below it.
func within(folder, p string) bool {
	return p == folder || strings.HasPrefix(p, folder+"/")
}

func (e *executor) skipped(name, why string) error {
	return e.report(e.th.Warning.Render, fmt.Sprintf("⚠️  Skipped: '%s' %s", name, why))
}
