package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demoSteps are the fixed scripts issued by the demo command, in order.
var demoSteps = []struct {
	name   string
	script string
}{
	{"Simple Print", `print("Hello from toolctl!")`},
	{"Calculation", `print(f"42 + 58 = {42 + 58}")`},
	{"System Info", `
import sys
import platform
print(f"Python {sys.version.split()[0]}")
print(f"Platform: {platform.platform()}")
`},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run built-in demo scripts",
	Long: `Runs a short sequence of fixed scripts against the toolbox tool.
The demo aborts on the first failure.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("=== Tool Driver Demo ===")
	fmt.Println()

	for i, step := range demoSteps {
		fmt.Printf("--- Step %d: %s ---\n", i+1, step.name)

		result, err := client.RunScript(cmd.Context(), step.script, true)
		if err != nil {
			return err
		}

		fmt.Printf("[+] %s\n", result)
		fmt.Println()
	}

	fmt.Println("All demo steps passed.")
	return nil
}
