package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/unkn0wn-root/cratepack/internal/deploy"
	"github.com/unkn0wn-root/cratepack/internal/errdef"
	"github.com/unkn0wn-root/cratepack/internal/prompt"
	"github.com/unkn0wn-root/cratepack/internal/theme"
)

func main() {
	th := theme.ForWriter(os.Stdout)
	p := prompt.ForTerminal(os.Stdin, os.Stdout, th)
	os.Exit(run(os.Args, p, th, os.Stdout, os.Stderr))
}

func run(args []string, p prompt.Prompter, th theme.Theme, stdout, stderr io.Writer) int {
	prog := programName(args)
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	mode, err := parseArgs(rest)
	if err != nil {
		fmt.Fprintln(stdout, th.Error.Render(usageLine(prog)))
		return errdef.ExitCode(err)
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	_, err = deploy.Run(deploy.Opt{
		Mode:     mode,
		Dir:      deploy.DefaultDir,
		Prompter: p,
		Out:      stdout,
		Log:      log,
		Theme:    th,
	})
	if err != nil {
		fmt.Fprintln(stderr, th.Error.Render("❌ "+err.Error()))
		return errdef.ExitCode(err)
	}
	return 0
}
