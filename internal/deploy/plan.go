package deploy

import (
	"errors"
	"io/fs"
	"path"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/filesvc"
)

// BuildPlan turns the answers into the ordered action list. src is only
// read: it decides whether Cargo.lock is copied and which src/ files exist.
func BuildPlan(m Mode, a Answers, src fs.FS) (Plan, error) {
	if !m.Valid() {
		return Plan{}, errdef.New(errdef.CodeUsage, "deploy: unknown mode %q", m)
	}
	if err := ValidateFolderName(a.FolderName); err != nil {
		return Plan{}, errdef.Wrap(errdef.CodeUsage, err, "deploy")
	}

	f := a.FolderName
	p := Plan{Mode: m, Folder: f}

	p.add(Op{Kind: OpMkdir, Path: path.Join(f, dirSource), Mode: dirPerm})
	p.add(Op{Kind: OpCopy, Src: fileManifest, Path: path.Join(f, fileManifest)})

	switch _, err := fs.Stat(src, fileLock); {
	case err == nil:
		p.add(Op{Kind: OpCopy, Src: fileLock, Path: path.Join(f, fileLock)})
	case !errors.Is(err, fs.ErrNotExist):
		return Plan{}, errdef.Wrap(errdef.CodeFilesystem, err, "deploy: stat %s", fileLock)
	}

	files, err := filesvc.ListFiles(src, dirSource, false)
	if err != nil {
		return Plan{}, errdef.Wrap(errdef.CodeFilesystem, err, "deploy: list %s", dirSource)
	}
	for _, file := range files {
		p.add(Op{Kind: OpCopy, Src: file.Path, Path: path.Join(f, dirSource, file.Name)})
	}

	if a.AddLicense {
		p.add(writeOp(path.Join(f, fileLicense), LicenseMIT))
	}

	readme := path.Join(f, fileReadme)
	p.add(writeOp(readme, readmeHeader(f)))

	switch m {
	case ModeGit:
		p.add(writeOp(path.Join(f, fileGitignore), gitignoreBody))
	case ModeAur:
		p.add(writeOp(path.Join(f, filePKGBUILD), PKGBUILDTemplate))
	}
	p.add(Op{Kind: OpAppend, Path: readme, Data: readmeSection(m), Mode: filePerm})

	for _, extra := range a.Extras {
		p.add(Op{Kind: OpExtra, Src: extra, Path: extra})
	}

	return p, nil
}

func writeOp(p, data string) Op {
	return Op{Kind: OpWrite, Path: p, Data: data, Mode: filePerm}
}
