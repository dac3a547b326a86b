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

package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Tong-Chen/jcvi/internal"
)

// SortHelp is the help string for the sort command.
const SortHelp = "\njcvi sort <bed-file>\n" +
	"[--inplace]\n" +
	"[--accn]\n" +
	"[--log-path path]\n"

// Sort implements the sort command. It orders a BED file with the
// system sort utility, lexicographically by (seqid, start, accn), or
// by (accn, seqid, start) when --accn is given, and writes the result
// to <basename>.sorted.bed, or back to the input file with --inplace.
func Sort() error {
	var flags flag.FlagSet

	var inplace, accn bool
	var logPath string

	flags.BoolVar(&inplace, "inplace", false, "sort the bed file in place")
	flags.BoolVar(&accn, "accn", false, "sort on the accessions instead of the positions")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 3, SortHelp)
	bedfile := getFilename(os.Args[2], SortHelp)

	if logPath != "" {
		setLogOutput(logPath)
	}

	if !checkExist("", bedfile) {
		fmt.Fprint(os.Stderr, SortHelp)
		os.Exit(1)
	}

	base := filepath.Base(bedfile)
	sortedbed := strings.TrimSuffix(base, filepath.Ext(base)) + ".sorted.bed"
	if inplace {
		sortedbed = bedfile
	}

	// The sort keys mirror the column layout: 1 seqid, 2 start, 4 accn.
	sortopt := []string{"-k1,1", "-k2,2n", "-k4,4"}
	if accn {
		sortopt = []string{"-k4,4", "-k1,1", "-k2,2n"}
	}

	out := sortedbed
	if inplace {
		out = filepath.Join(filepath.Dir(bedfile), uuid.New().String()+".sorted.bed")
	}

	args := append(sortopt, bedfile, "-o", out)
	sortCmd := exec.Command("sort", args...)
	sortCmd.Stderr = os.Stderr
	internal.RunCmd(sortCmd)

	if inplace {
		if err := os.Rename(out, bedfile); err != nil {
			return err
		}
	}
	log.Printf("Sorted bed file written to %v.\n", sortedbed)
	return nil
}
