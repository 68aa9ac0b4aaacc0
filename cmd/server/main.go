// Package main is the entry point for the catalog gRPC server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vladmesh/dnd-helper-sub000/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "dnd-catalog",
	Short: "D&D 5e catalog gRPC server",
	Long: `dnd-catalog serves a bilingual catalog of D&D 5e monsters and spells over gRPC.
Entities come back wrapped with their translation and enum labels.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
