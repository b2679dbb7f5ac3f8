package deploy

const DefaultDir = "."

const (
	fileManifest  = "Cargo.toml"
	fileLock      = "Cargo.lock"
	dirSource     = "src"
	fileLicense   = "LICENSE"
	fileReadme    = "README.md"
	fileGitignore = ".gitignore"
	filePKGBUILD  = "PKGBUILD"
)

const gitignoreBody = "/target\nCargo.lock\n**/*.rs.bk\n"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	labelFolder    = "📦 Enter deployment folder name"
	labelLicense   = "📝 Add MIT LICENSE?"
	labelExtras    = "📁 Do you want to include additional files or folders (e.g., config.json, .env)?"
	labelExtraList = "📝 Enter file/folder names separated by commas"
	labelTips      = "💡 Would you like some tips for using this boilerplate?"
)
