package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drive/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant of the driving challenge.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, v.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'drive play <id>' to start a run.")
}
