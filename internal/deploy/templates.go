package deploy

import (
	_ "embed"
	"strings"

	"github.com/MakeNowJust/heredoc"
)

// LicenseMIT is written to LICENSE when the user opts in.
//
//go:embed resources/LICENSE_MIT
var LicenseMIT string

// PKGBUILDTemplate is written verbatim in aur mode.
//
//go:embed resources/PKGBUILD
var PKGBUILDTemplate string

const fence = "```"

var (
	gitQuickStart = buildGitQuickStart()
	aurGuide      = buildAurGuide()
)

var gitTips = heredoc.Doc(`
	👉 To publish on GitHub:
	  git init
	  git remote add origin <your-repo-url>
	  git push -u origin master
`)

var aurTips = heredoc.Doc(`
	👉 To publish to AUR:
	  git init
	  git remote add origin ssh://aur@aur.archlinux.org/<your-pkg>.git
	  git push -u origin master
`)

func readmeHeader(folder string) string {
	return "# " + folder + "\n\n"
}

func buildGitQuickStart() string {
	var b strings.Builder
	b.WriteString("## 🧭 Quick Start\n\n")
	b.WriteString(fence + "bash\n")
	b.WriteString("cargo run\n")
	b.WriteString("cargo build --release\n\n")
	b.WriteString("git init\n")
	b.WriteString("git remote add origin <your-repo-url>\n")
	b.WriteString("git push -u origin master\n")
	b.WriteString(fence + "\n\n")
	return b.String()
}

func buildAurGuide() string {
	var b strings.Builder
	b.WriteString("## 📦 Arch Linux (AUR) Packaging Guide\n\n")
	b.WriteString("1. Edit PKGBUILD to match your repo.\n")
	b.WriteString("2. Run:\n\n")
	b.WriteString(fence + "bash\n")
	b.WriteString("makepkg -si\n")
	b.WriteString(fence + "\n\n")
	b.WriteString("3. To publish:\n\n")
	b.WriteString(fence + "bash\n")
	b.WriteString("git init\n")
	b.WriteString("git remote add origin ssh://aur@aur.archlinux.org/example.git\n")
	b.WriteString("git push -u origin master\n")
	b.WriteString(fence + "\n\n")
	return b.String()
}

func readmeSection(m Mode) string {
	if m == ModeAur {
		return aurGuide
	}
	return gitQuickStart
}

func tipsFor(m Mode) string {
	if m == ModeAur {
		return aurTips
	}
	return gitTips
}
