package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbiterhq/colloquy/internal/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Print the debate state-machine graph as Mermaid text",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), diagram.Mermaid())
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
}
