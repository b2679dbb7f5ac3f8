package filesvc

import (
	"io/fs"
	"path"
	"sort"
)

type FileEntry struct {
	Name string
	Path string
}

// ListFiles returns the files under dir in fsys. Without recursion only the
// direct regular-file children are listed (symlinks are followed, directories
// skipped). With recursion every non-directory entry below dir is listed and
// Name is the slash path relative to dir.
func ListFiles(fsys fs.FS, dir string, recursive bool) ([]FileEntry, error) {
	var entries []FileEntry

	appendEntry := func(name, p string) {
		entries = append(entries, FileEntry{Name: name, Path: p})
	}

	if recursive {
		err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel := p
			if dir != "." {
				rel = p[len(dir)+1:]
			}
			appendEntry(rel, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		dirEntries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, err
		}

		for _, entry := range dirEntries {
			p := path.Join(dir, entry.Name())
			info, err := fs.Stat(fsys, p)
			if err != nil {
				// dangling symlink
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			appendEntry(entry.Name(), p)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
