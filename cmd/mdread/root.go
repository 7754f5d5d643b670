package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vertti/mdread/pkg/config"
	"github.com/vertti/mdread/pkg/markdown"
	"github.com/vertti/mdread/pkg/output"
)

const binaryName = "mdread"

var (
	colorFlag  string
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           binaryName + " <markdown_file>",
	Short:         "Read a markdown file and print its contents",
	Version:       Version,
	Args:          exactlyOnePath,
	RunE:          runRead,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "color diagnostics: auto, always or never")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default: nearest "+config.FileName+")")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: capitalize(err.Error())}
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText())
	})
}

// exactlyOnePath accepts a single positional path. Its content is validated by the reader.
func exactlyOnePath(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{msg: "No arguments provided"}
	case len(args) > 1:
		return &usageError{msg: fmt.Sprintf("Too many arguments: expected 1, got %d", len(args))}
	}
	return nil
}

func runRead(cmd *cobra.Command, args []string) error {
	opts, err := loadSettings()
	if err != nil {
		return err
	}
	output.SetColorMode(opts.Color)

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  opts.LogLevel,
		Prefix: binaryName,
	})
	if opts.source != "" {
		logger.Debug("loaded config", "path", opts.source)
	}

	path := args[0]
	logger.Debug("reading file", "path", path)

	content, err := markdown.Read(path)
	if err != nil {
		logger.Debug("read failed", "kind", markdown.KindOf(err), "err", err)
		return err
	}

	logger.Debug("read complete", "path", path, "bytes", len(content))
	printer := &output.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr(), Binary: binaryName}
	printer.PrintContent(content)
	return nil
}

type settings struct {
	config.Config
	source string
}

// loadSettings overlays command-line flags on the config file.
func loadSettings() (settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, source, err := config.Resolve(wd, configPath)
	if err != nil {
		return settings{}, &configError{err: err}
	}

	if colorFlag != "" {
		mode, err := output.ParseColorMode(colorFlag)
		if err != nil {
			return settings{}, &usageError{msg: capitalize(err.Error())}
		}
		cfg.Color = mode
	}
	if verbose {
		cfg.LogLevel = log.DebugLevel
	}

	return settings{Config: cfg, source: source}, nil
}
