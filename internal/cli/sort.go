package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/sorting"
)

func (c *CLI) sortCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:     "sort [ints...]",
		Short:   "Sort integers with gnome, bubble or insertion sort",
		Example: `  classics sort 5 3 9 1 --method gnome`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			values := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("sort: invalid integer %q: %w", a, err)
				}
				values[i] = v
			}
			if !cmd.Flags().Changed("method") {
				method = c.cfg.Sort.Method
			}
			fn, err := sorting.ByName[int](method)
			if err != nil {
				return fmt.Errorf("sort: %w", err)
			}

			logger.Debug("sorting", "method", method, "len", len(values))
			sw := startStopwatch(logger)
			res := fn(values)
			sw.done("sorted", "method", method, "len", len(values), "iterations", res.Iterations)

			out := make([]string, len(values))
			for i, v := range values {
				out[i] = strconv.Itoa(v)
			}
			w := cmd.OutOrStdout()
			printKeyValue(w, "Sorted", strings.Join(out, " "))
			printKeyValue(w, "Iterations", strconv.FormatUint(res.Iterations, 10))
			printMillis(w, res.Millis())
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "gnome, bubble or insertion (default from config: insertion)")
	return cmd
}
