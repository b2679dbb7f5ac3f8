package deploy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// executor applies a plan in order. Core ops stop the run on the first
// error and leave whatever was written in place; extras never do.
type executor struct {
	fs  FS
	dir string
	out io.Writer
	log *slog.Logger
	th  theme.Theme
}

func (e *executor) apply(p Plan) (Report, error) {
	var rep Report
	for _, op := range p.Ops {
		e.log.Debug("apply", "op", op.String())

		if op.Kind == OpExtra {
			in, err := e.includeExtra(p.Folder, op.Src)
			if err != nil {
				return rep, err
			}
			rep.Inclusions = append(rep.Inclusions, in)
			continue
		}

		if err := e.applyCore(op); err != nil {
			return rep, errdef.Wrap(errdef.CodeFilesystem, err, "%s %s", op.Kind, op.Path)
		}
	}
	return rep, nil
}

func (e *executor) applyCore(op Op) error {
	dst := e.abs(op.Path)
	switch op.Kind {
	case OpMkdir:
		return e.fs.MkdirAll(dst, dirPerm)
	case OpCopy:
		return e.copyFile(e.abs(op.Src), dst)
	case OpCopyTree:
		return e.copyTree(e.abs(op.Src), dst)
	case OpWrite:
		return e.writeAtomic(dst, op.Mode, strings.NewReader(op.Data))
	case OpAppend:
		return e.appendFile(dst, op.Mode, op.Data)
	default:
		return fmt.Errorf("unknown op %q", op.Kind)
	}
}

// abs resolves p against the project root; absolute paths are kept.
func (e *executor) abs(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.dir, p)
}

func (e *executor) appendFile(p string, m fs.FileMode, data string) (err error) {
	w, err := e.fs.OpenAppend(p, m)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = io.WriteString(w, data)
	return err
}

// writeAtomic streams r into a temp file next to p and renames it over p.
func (e *executor) writeAtomic(p string, m fs.FileMode, r io.Reader) (err error) {
	d := filepath.Dir(p)
	f, err := e.fs.CreateTemp(d, ".cratepack-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = e.fs.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = io.Copy(f, r); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = e.fs.Rename(tmp, p); err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return err
	}
	if err = e.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return e.fs.Rename(tmp, p)
}

func (e *executor) report(style func(...string) string, line string) error {
	if e.out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(e.out, style(line)); err != nil {
		return fmt.Errorf("deploy: report %q: %w", line, err)
	}
	return nil
}
