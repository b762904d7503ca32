package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ttg",
		Short:   "Timetable Generator - extract your personal schedule from the weekly timetable PDF",
		Version: version,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(coursesCmd())
	rootCmd.AddCommand(findCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
