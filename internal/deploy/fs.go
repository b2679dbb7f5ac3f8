package deploy

import (
	"io"
	"io/fs"
	"os"
)

type TempFile interface {
	io.Writer
	Name() string
	Chmod(fs.FileMode) error
	Sync() error
	Close() error
}

// FS is the write side of a run. Paths are native OS paths.
type FS interface {
	Stat(string) (fs.FileInfo, error)
	Lstat(string) (fs.FileInfo, error)
	MkdirAll(string, fs.FileMode) error
	Open(string) (io.ReadCloser, error)
	ReadDir(string) ([]fs.DirEntry, error)
	Readlink(string) (string, error)
	Symlink(string, string) error
	CreateTemp(string, string) (TempFile, error)
	OpenAppend(string, fs.FileMode) (io.WriteCloser, error)
	Rename(string, string) error
	Remove(string) error
}

type OSFS struct{}

func (OSFS) Stat(p string) (fs.FileInfo, error)  { return os.Stat(p) }
func (OSFS) Lstat(p string) (fs.FileInfo, error) { return os.Lstat(p) }
func (OSFS) MkdirAll(p string, m fs.FileMode) error {
	return os.MkdirAll(p, m)
}
func (OSFS) Open(p string) (io.ReadCloser, error)       { return os.Open(p) }
func (OSFS) ReadDir(p string) ([]fs.DirEntry, error)    { return os.ReadDir(p) }
func (OSFS) Readlink(p string) (string, error)          { return os.Readlink(p) }
func (OSFS) Symlink(target, p string) error             { return os.Symlink(target, p) }
func (OSFS) CreateTemp(d, pat string) (TempFile, error) { return os.CreateTemp(d, pat) }
func (OSFS) Rename(a, b string) error                   { return os.Rename(a, b) }
func (OSFS) Remove(p string) error                      { return os.Remove(p) }
func (OSFS) OpenAppend(p string, m fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(p, os.O_WRONLY|os.O_APPEND|os.O_CREATE, m)
}
