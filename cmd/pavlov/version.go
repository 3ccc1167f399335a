package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ef4/pavlov"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pavlov",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pavlov version %s\n", pavlov.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
