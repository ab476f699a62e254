package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/permutation"
)

// largeInput is the token count above which a warning about n! is logged.
const largeInput = 10

func (c *CLI) permuteCommand() *cobra.Command {
	var (
		strategy string
		output   string
		echo     bool
	)

	cmd := &cobra.Command{
		Use:   "permute [tokens...]",
		Short: "Enumerate every permutation of the given tokens",
		Long: `Enumerate every permutation of the given tokens with one of the
registered strategies (see "classics strategies"). Each permutation is written
as one line like "[a, b, c]" to --output and/or stdout (--print). Without a
sink the permutations are only generated, which measures the strategy's cost.`,
		Example: `  # Lexicographic order into a file
  classics permute a b c -s narayana -o perms.txt

  # Minimal-change order on stdout
  classics permute 1 2 3 -s johnson-trotter --print`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if !cmd.Flags().Changed("strategy") {
				strategy = c.cfg.Permute.Strategy
			}
			if !cmd.Flags().Changed("output") {
				output = c.cfg.Permute.Output
			}
			if len(args) > largeInput {
				logger.Warn("large input, enumeration grows factorially",
					"tokens", len(args), "permutations", permutation.Count(len(args)).String())
			}

			var opts []permutation.Option
			if output != "" {
				opts = append(opts, permutation.WithSinkPath(output))
			}
			if echo {
				opts = append(opts, permutation.WithWriter(cmd.OutOrStdout()))
			}

			logger.Debug("enumerating", "strategy", strategy, "tokens", strings.Join(args, ","), "output", output)
			sw := startStopwatch(logger)
			res, err := permutation.Enumerate(strategy, args, opts...)
			if err != nil {
				return fmt.Errorf("permute: %w", err)
			}
			sw.done("enumerated", "strategy", res.Strategy, "count", res.Count)

			w := cmd.OutOrStdout()
			printKeyValue(w, "Strategy", res.Strategy)
			printKeyValue(w, "Count", fmt.Sprintf("%d", res.Count))
			printMillis(w, res.Millis())
			if output != "" {
				printKeyValue(w, "Output", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "permutation strategy (default from config: narayana)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write permutations to this file")
	cmd.Flags().BoolVar(&echo, "print", false, "also write permutations to stdout")

	return cmd
}

func (c *CLI) strategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List registered permutation strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range permutation.Strategies() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
