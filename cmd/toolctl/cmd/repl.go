package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive Python REPL against the tool server",
	Long: `Reads lines from standard input and executes each one as a blocking
script on the toolbox tool. Errors are printed per line; the loop keeps
running until 'exit', 'quit' or end of input.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Interactive Python REPL ===")
	fmt.Fprintln(out, "Type Python code and press Enter. Type 'exit' or 'quit' to leave.")
	fmt.Fprintln(out)

	return replLoop(cmd.Context(), cmd.InOrStdin(), out, func(ctx context.Context, line string) (string, error) {
		return client.RunScript(ctx, line, true)
	})
}

// replLoop drives the read-execute-print cycle. The runner is injected so
// the loop itself stays free of transport concerns.
func replLoop(ctx context.Context, in io.Reader, out io.Writer, run func(context.Context, string) (string, error)) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, ">>> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if line == "" {
			continue
		}

		result, err := run(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}

	return scanner.Err()
}
