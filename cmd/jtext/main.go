// Copyright (C) 2026 M. Finley. All Rights Reserved.

// jtext reads a JSON document from a file or stdin, parses it, and prints
// the serialized round trip of the parsed value. With --repeat it instead
// deserializes the input repeatedly and reports the elapsed time, which is
// useful for coarse throughput measurements on large documents.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/mfinley/jtext/ast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var repeat int
	var quiet bool

	flagSet := pflag.NewFlagSet("jtext", pflag.ContinueOnError)
	flagSet.IntVar(&repeat, "repeat", 0, "deserialize the input N times and report elapsed time")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress output, report only success or failure")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	src, err := readInput(flagSet.Args())
	if err != nil {
		return err
	}

	if repeat > 0 {
		return timeDeserialize(src, repeat)
	}

	v, err := ast.Parse(src)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Println(v.JSON())
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func timeDeserialize(src string, n int) error {
	start := time.Now()
	for i := 0; i < n; i++ {
		if _, err := ast.Parse(src); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("deserialized %d bytes %d times in %v (%v per pass)\n",
		len(src), n, elapsed, elapsed/time.Duration(n))
	return nil
}
