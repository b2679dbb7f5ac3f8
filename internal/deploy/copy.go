package deploy

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

func (e *executor) copyFile(src, dst string) error {
	info, err := e.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}
	return e.copyRegular(src, dst, info.Mode().Perm())
}

func (e *executor) copyRegular(src, dst string, perm fs.FileMode) error {
	r, err := e.fs.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	return e.writeAtomic(dst, perm, r)
}

// copyTree mirrors the directory src at dst. Symlinks inside the tree are
// recreated as links and special files are skipped. dst itself is never
// descended into when it lies below src. Every entry is attempted; the
// returned error joins all failures.
func (e *executor) copyTree(src, dst string) error {
	info, err := e.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}
	return e.copyDir(src, dst, info.Mode().Perm(), filepath.Clean(dst))
}

func (e *executor) copyDir(src, dst string, perm fs.FileMode, skip string) error {
	if err := e.fs.MkdirAll(dst, perm|0o700); err != nil {
		return err
	}
	entries, err := e.fs.ReadDir(src)
	if err != nil {
		return err
	}

	var errs []error
	for _, ent := range entries {
		s := filepath.Join(src, ent.Name())
		d := filepath.Join(dst, ent.Name())
		if s == skip {
			continue
		}
		if err := e.copyEntry(s, d, skip); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *executor) copyEntry(src, dst, skip string) error {
	info, err := e.fs.Lstat(src)
	if err != nil {
		return err
	}
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return e.copySymlink(src, dst)
	case mode.IsDir():
		return e.copyDir(src, dst, mode.Perm(), skip)
	case mode.IsRegular():
		return e.copyRegular(src, dst, mode.Perm())
	default:
		e.log.Debug("skip special file", "path", src, "mode", mode.String())
		return nil
	}
}

func (e *executor) copySymlink(src, dst string) error {
	target, err := e.fs.Readlink(src)
	if err != nil {
		return err
	}
	if err := e.fs.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return e.fs.Symlink(target, dst)
}
