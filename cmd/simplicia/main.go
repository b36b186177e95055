// Command simplicia closes weighted simplex tables: it reads per-dimension
// delimited tables of maximal simplices, expands every face down to single
// labels, sums weights across duplicate faces, and writes one closed table
// per dimension.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
