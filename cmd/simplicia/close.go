package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/simplicia/closure"
	"github.com/katalvlaran/simplicia/tabular"
	"github.com/spf13/cobra"
)

var (
	flagCloseJob          string
	flagCloseInputs       []string
	flagCloseOutput       string
	flagCloseDelimiter    string
	flagCloseWorkers      int
	flagClosePreAggregate bool
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Read maximal-simplex tables, close the complex, write every dimension",
	RunE:  runClose,
}

func init() {
	closeCmd.Flags().StringVar(&flagCloseJob, "job", "", "YAML job file; flags override its fields")
	closeCmd.Flags().StringArrayVar(&flagCloseInputs, "in", nil, "Input table file (repeatable, one per dimension)")
	closeCmd.Flags().StringVar(&flagCloseOutput, "out", "", "Directory for the closed per-dimension tables")
	closeCmd.Flags().StringVar(&flagCloseDelimiter, "delimiter", ",", "Field delimiter, a single character")
	closeCmd.Flags().IntVar(&flagCloseWorkers, "workers", 0, "Goroutines for per-simplex fan-out (0 = serial)")
	closeCmd.Flags().BoolVar(&flagClosePreAggregate, "pre-aggregate", true, "Aggregate each dimension before expanding it")
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, _ []string) error {
	job := defaultJob()
	if flagCloseJob != "" {
		loaded, err := loadJob(flagCloseJob)
		if err != nil {
			return fmt.Errorf("cannot load job file: %w", err)
		}
		job = loaded
	}
	applyFlags(cmd, job)

	if len(job.Inputs) == 0 {
		return errors.New("no input tables: pass --in or list inputs in the job file")
	}
	if job.Output == "" {
		return errors.New("no output directory: pass --out or set output in the job file")
	}
	comma, err := delimiterRune(job.Delimiter)
	if err != nil {
		return err
	}

	tabOpts := tabular.Options{Comma: comma}
	store, err := tabular.ReadStore(job.Inputs, &tabOpts)
	if err != nil {
		return err
	}

	opts := closure.DefaultOptions()
	opts.Workers = job.Workers
	if job.PreAggregate != nil {
		opts.PreAggregate = *job.PreAggregate
	}
	if err := closure.Close(store, &opts); err != nil {
		return err
	}

	paths, err := tabular.WriteStore(job.Output, store, &tabOpts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}

	return nil
}

// applyFlags overlays explicitly-set flags onto the job configuration, so a
// job file can be partially overridden from the command line.
func applyFlags(cmd *cobra.Command, job *Job) {
	if cmd.Flags().Changed("in") {
		job.Inputs = flagCloseInputs
	}
	if cmd.Flags().Changed("out") {
		job.Output = flagCloseOutput
	}
	if cmd.Flags().Changed("delimiter") {
		job.Delimiter = flagCloseDelimiter
	}
	if cmd.Flags().Changed("workers") {
		job.Workers = flagCloseWorkers
	}
	if cmd.Flags().Changed("pre-aggregate") {
		job.PreAggregate = &flagClosePreAggregate
	}
}

// delimiterRune validates and decodes the single-character delimiter.
func delimiterRune(s string) (rune, error) {
	if s == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}

	return r, nil
}
