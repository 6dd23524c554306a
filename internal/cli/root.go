// Package cli contains the htmlhelper command-line interface
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/htmlhelper/internal/config"
)

var version = "dev"

// SetVersion sets the version string reported by the version command
func SetVersion(v string) {
	version = v
}

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the htmlhelper command tree
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	root := &cobra.Command{
		Use:   "htmlhelper",
		Short: "Truncate, clean and strip HTML fragments",
		Long: `htmlhelper applies string-level HTML transforms to a file or stdin.

Example usage:
  htmlhelper limit -n 200 post.html     # Truncate to 200 visible characters
  htmlhelper clean < comment.html       # Neutralise script vectors
  htmlhelper strip page.html            # Plain text
  htmlhelper name 'user[location][city]'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .htmlhelper.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newLimitCommand(a),
		newCleanCommand(a),
		newStripCommand(a),
		newNameCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the htmlhelper command tree against os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

// init loads configuration and sets up the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if a.verbose || cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	} else if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	a.logger.Debug("configuration loaded",
		"limit_length", cfg.Limit.Length,
		"limit_end", cfg.Limit.End,
		"log_level", level.String(),
	)
	return nil
}

// readInput returns the contents of the file named by args, or stdin
// when no file is given or the name is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
