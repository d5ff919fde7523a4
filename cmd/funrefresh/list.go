package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/refresh-arcade/internal/header"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the header games",
	Long:  `Shows the games a refresh header can run.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := header.Variants()

	fmt.Println("Available header games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.String()) > maxIDLen {
			maxIDLen = len(v.String())
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "-----------")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, v, v.Title(), v.Description())
	}

	fmt.Println()
	fmt.Println("Run 'funrefresh play <id>' to pull the header in your terminal.")
}
