package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/fibonacci"
)

func (c *CLI) fibCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Long: fmt.Sprintf(`Compute the N-th Fibonacci number.

The iterative method accepts N up to %d. The recursive method makes a
number of calls that grows like F(N) and accepts N up to %d.`, fibonacci.MaxN, fibonacci.MaxRecursiveN),
		Example: `  classics fib 30 --method recursive
  classics fib 90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("fib: invalid N %q: %w", args[0], err)
			}
			if !cmd.Flags().Changed("method") {
				method = c.cfg.Fibonacci.Method
			}
			fn, err := fibonacci.ByName(method)
			if err != nil {
				return fmt.Errorf("fib: %w", err)
			}

			logger.Debug("computing", "method", method, "n", n)
			sw := startStopwatch(logger)
			res, err := fn(n)
			if err != nil {
				return fmt.Errorf("fib: %w", err)
			}
			sw.done("computed", "method", method, "n", n, "iterations", res.Iterations)

			w := cmd.OutOrStdout()
			printKeyValue(w, "Value", strconv.FormatUint(res.Value, 10))
			printKeyValue(w, "Iterations", strconv.FormatUint(res.Iterations, 10))
			printMillis(w, res.Millis())
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "recursive or iterative (default from config: iterative)")
	return cmd
}
