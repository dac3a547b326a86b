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

	"github.com/dustin/go-humanize"

	"github.com/Tong-Chen/jcvi/bed"
)

// SumHelp is the help string for the sum command.
const SumHelp = "\njcvi sum <bed-file>\n" +
	"[--log-path path]\n" +
	"[--timed]\n" +
	"[--profile name]\n"

// Sum implements the sum command. It loads a BED file and reports the
// number of distinct sequences, the number of intervals, and the total
// number of covered bases, counting overlapping regions once.
func Sum() (err error) {
	var flags flag.FlagSet

	var logPath, profile string
	var timed bool

	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file")

	parseFlags(flags, 3, SumHelp)
	bedfile := getFilename(os.Args[2], SumHelp)

	if logPath != "" {
		setLogOutput(logPath)
	}

	if !checkExist("", bedfile) {
		fmt.Fprint(os.Stderr, SumHelp)
		os.Exit(1)
	}

	timedRun(timed, profile, "Summing bed intervals.", 1, func() {
		var b *bed.Bed
		if b, err = bed.Load(bedfile, nil); err != nil {
			return
		}
		log.Printf("Total seqids: %v\n", len(b.Seqids()))
		log.Printf("Total ranges: %v\n", b.Len())
		log.Printf("Total bases: %v bp\n", humanize.Comma(b.Sum()))
	})
	return err
}
