package main

import (
	"fmt"
	"path/filepath"

	"github.com/unkn0wn-root/cratepack/internal/deploy"
	"github.com/unkn0wn-root/cratepack/internal/errdef"
)

const defaultProg = "cratepack"

// parseArgs reads the arguments after the program name. Only
// "--mode git" and "--mode aur" are accepted in that position; anything
// after the mode value is ignored.
func parseArgs(args []string) (deploy.Mode, error) {
	if len(args) < 2 || args[0] != "--mode" {
		return "", errdef.New(errdef.CodeUsage, "missing --mode")
	}
	m, ok := deploy.ParseMode(args[1])
	if !ok {
		return "", errdef.New(errdef.CodeUsage, "unknown mode %q", args[1])
	}
	return m, nil
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return defaultProg
	}
	return filepath.Base(args[0])
}

func usageLine(prog string) string {
	return fmt.Sprintf("❌ Usage: %s --mode <git|aur>", prog)
}
