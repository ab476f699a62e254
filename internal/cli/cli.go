// Package cli implements the classics command-line interface.
//
// Commands:
//   - permute:    enumerate permutations of the given tokens
//   - strategies: list registered permutation strategies
//   - fib:        compute a Fibonacci number
//   - sort:       sort integers with an elementary method
//
// Defaults come from an optional TOML file (--config); flags override it.
// --verbose switches logging to debug. The logger travels in the command
// context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/internal/config"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	cfg        config.Config
	configPath string
	verbose    bool
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(logw, log.InfoLevel),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "classics",
		Short:         "Classic algorithms: permutations, Fibonacci, sorting",
		Long:          `classics runs textbook algorithms with step counters and timing: three permutation generators, recursive and iterative Fibonacci, and three elementary sorts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			level, err := resolveLevel(cfg.Log.Level, c.verbose)
			if err != nil {
				return err
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			if c.configPath != "" {
				c.Logger.Debug("loaded config", "path", c.configPath)
			}
			return nil
		},
	}

	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.permuteCommand())
	root.AddCommand(c.strategiesCommand())
	root.AddCommand(c.fibCommand())
	root.AddCommand(c.sortCommand())

	return root
}
