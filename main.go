// jcvi: a toolkit for working with genomic interval and annotation files.
// Copyright (c) 2026 Tong Chen.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// jcvi is a toolkit for working with genomic interval files in the
// BED format: sorting them, summing the bases they cover, and pairing
// mapped reads.
//
// Please see https://github.com/Tong-Chen/jcvi for a documentation of
// the tool, and below for the API documentation.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Tong-Chen/jcvi/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: sort, sum, pairs")
	fmt.Fprint(os.Stderr, "\n", cmd.SortHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.SumHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.PairsHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprintln(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "sort":
		err = cmd.Sort()
	case "sum":
		err = cmd.Sum()
	case "pairs":
		err = cmd.Pairs()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Printf("Unknown command %v.\n", os.Args[1])
		fmt.Fprintln(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
