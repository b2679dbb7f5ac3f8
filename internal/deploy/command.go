// Package deploy builds a deployment folder from a Cargo project: it asks
// the question script, plans the copy, applies it and offers publishing tips.
package deploy

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/unkn0wn-root/cratepack/internal/errdef"
)

// Command runs a deployment with injectable dependencies.
type Command struct {
	fs  FS
	out io.Writer
	log *slog.Logger
}

func New() *Command {
	return &Command{
		fs:  OSFS{},
		out: os.Stdout,
		log: slog.New(slog.DiscardHandler),
	}
}

// Run keeps the package level API.
func Run(o Opt) (Result, error) {
	return New().Run(o)
}

func (c *Command) Run(o Opt) (Result, error) {
	o = withDefaults(o)
	if o.FS == nil {
		o.FS = c.fs
	}
	if o.Out == nil {
		o.Out = c.out
	}
	if o.Log == nil {
		o.Log = c.log
	}
	if o.Source == nil {
		o.Source = os.DirFS(o.Dir)
	}
	if !o.Mode.Valid() {
		return Result{}, errdef.New(errdef.CodeUsage, "deploy: unknown mode %q", o.Mode)
	}
	if o.Prompter == nil {
		return Result{}, errdef.New(errdef.CodePrompt, "deploy: no prompter configured")
	}

	answers, err := Ask(o.Prompter)
	if err != nil {
		return Result{}, err
	}

	plan, err := BuildPlan(o.Mode, answers, o.Source)
	if err != nil {
		return Result{}, err
	}
	o.Log.Debug("plan ready", "mode", plan.Mode, "folder", plan.Folder, "ops", plan.Describe())

	res := Result{Folder: plan.Folder, Plan: plan}
	ex := &executor{fs: o.FS, dir: o.Dir, out: o.Out, log: o.Log, th: o.Theme}
	res.Report, err = ex.apply(plan)
	if err != nil {
		return res, err
	}

	if res.TipsShown, err = emitTips(o.Prompter, o.Mode, o.Out); err != nil {
		return res, err
	}

	done := o.Theme.Success.Render(fmt.Sprintf("✅ Boilerplate created at '%s'", plan.Folder))
	if _, err := fmt.Fprintln(o.Out, done); err != nil {
		return res, fmt.Errorf("deploy: write summary: %w", err)
	}
	return res, nil
}
