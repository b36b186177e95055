package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job is the YAML job-file shape consumed by `simplicia close --job`.
//
// Example:
//
//	inputs:
//	  - data/teams_dim2.csv
//	  - data/pairs_dim1.csv
//	output: out/closed
//	delimiter: ";"
//	workers: 4
//	pre_aggregate: true
type Job struct {
	Inputs       []string `yaml:"inputs"`
	Output       string   `yaml:"output"`
	Delimiter    string   `yaml:"delimiter"`
	Workers      int      `yaml:"workers"`
	PreAggregate *bool    `yaml:"pre_aggregate"`
}

// defaultJob returns an empty job with comma delimiting and serial
// execution; flags fill in the rest.
func defaultJob() *Job {
	return &Job{Delimiter: ","}
}

// loadJob reads and decodes a YAML job file. Unknown fields are rejected so
// a typo in a key fails loudly instead of silently using a default.
func loadJob(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	job := defaultJob()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(job); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return job, nil
}
