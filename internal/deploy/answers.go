package deploy

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Answers is what the question script collected.
type Answers struct {
	FolderName string
	AddLicense bool
	Extras     []string
}

// SplitExtras splits on commas and trims every segment. Empty segments are
// kept so they surface as skipped entries.
func SplitExtras(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ValidateFolderName accepts a single relative path segment.
func ValidateFolderName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("folder name is required")
	case name == "." || name == "..":
		return fmt.Errorf("folder name %q is not allowed", name)
	case filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return fmt.Errorf("folder name %q must be relative", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("folder name %q must not contain path separators", name)
	}
	return nil
}
