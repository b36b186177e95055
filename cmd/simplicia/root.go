package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "simplicia",
	Short: "Simplicial-complex closure of weighted label tables",
	Long: `simplicia derives the full simplicial-complex closure of observed
co-occurrence data: every subset of every maximal label set, with weights
summed across all simplices that share a face.

Input and output are flat delimited tables, one file per dimension, with
label columns followed by a numeric weight column.`,
	SilenceUsage: true,
}
