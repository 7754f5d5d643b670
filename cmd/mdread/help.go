package main

import (
	"fmt"

	"github.com/vertti/mdread/pkg/markdown"
)

func helpText() string {
	return fmt.Sprintf(`%[1]s - Markdown Reader %[2]s

USAGE:
    %[1]s [OPTIONS] <markdown_file>

ARGUMENTS:
    <markdown_file>    Path to the markdown file to read
                       Must have a .md or .markdown extension
                       and be at most %[3]s

OPTIONS:
    -h, --help             Display this help message
        --version          Display the version
    -v, --verbose          Log debug information to stderr
        --color <mode>     Color diagnostics: auto, always or never
        --config <file>    Config file (default: nearest .mdread.toml)

EXAMPLES:
    Read a markdown file:
        $ %[1]s README.md

    Read a file in a subdirectory:
        $ %[1]s docs/guide.md

    Show help:
        $ %[1]s --help
`, binaryName, Version, markdown.FormatSize(markdown.MaxFileSize))
}
