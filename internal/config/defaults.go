package config

const (
	defaultPolicy            = "basic"
	defaultLogLevel          = "info"
	defaultTreeOutputFile    = "project_tree.txt"
	defaultDedupOutputSuffix = ".dedup.txt"
)

var (
	defaultTreeExcludeDirs = []string{
		"bin", "obj", "Properties", ".vs", ".idea", ".vscode", ".git",
		"Platforms", "Resources",
	}
	defaultTreeExcludeFiles = []string{
		"*.dll", "*.pdb", "*.log", "*.exe",
		".dockerignore", ".editorconfig", ".gitignore",
		defaultTreeOutputFile,
	}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Summarize: Summarize{
			Policy:    defaultPolicy,
			Clipboard: true,
		},
		Tree: Tree{
			ExcludeDirs:  append([]string{}, defaultTreeExcludeDirs...),
			ExcludeFiles: append([]string{}, defaultTreeExcludeFiles...),
			OutputFile:   defaultTreeOutputFile,
		},
		Dedup: Dedup{
			OutputSuffix: defaultDedupOutputSuffix,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
