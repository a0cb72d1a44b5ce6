// Package main is the entry point for pgedge-seedgen.
package main

import (
	"fmt"
	"os"

	"github.com/pgEdge/pgedge-seedgen/internal/cli"

	// Register datasets
	_ "github.com/pgEdge/pgedge-seedgen/internal/datasets/hr"
	_ "github.com/pgEdge/pgedge-seedgen/internal/datasets/insurance"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
