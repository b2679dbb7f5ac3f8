package deploy

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/unkn0wn-root/cratepack/internal/prompt"
	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// Opt describes one run. Fields are plain values so callers can map the
// invocation directly; zero values fall back to the Command's defaults.
type Opt struct {
	Mode     Mode
	Dir      string
	Prompter prompt.Prompter
	Source   fs.FS
	FS       FS
	Out      io.Writer
	Log      *slog.Logger
	Theme    theme.Theme
}

func withDefaults(opt Opt) Opt {
	opt.Dir = strings.TrimSpace(opt.Dir)
	if opt.Dir == "" {
		opt.Dir = DefaultDir
	}
	return opt
}
