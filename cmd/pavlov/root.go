package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pavlov",
	Short: "Pavlov is a declarative behavioral specification layer",
	Long:  `Pavlov compiles nested behavioral specifications into flat, ordered test runs. This binary demonstrates the library against its bundled sample specification.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
