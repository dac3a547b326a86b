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
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"github.com/Tong-Chen/jcvi/bed"
	"github.com/Tong-Chen/jcvi/internal"
)

// PairsHelp is the help string for the pairs command.
const PairsHelp = "\njcvi pairs <bed-file>\n" +
	"[--cutoff limit]\n" +
	"[--mate-orientation ++/--/+-/-+]\n" +
	"[--nrows limit]\n" +
	"[--pairs-file]\n" +
	"[--log-path path]\n"

// A matePair is two reads of the same template mapped onto the same
// sequence.
type matePair struct {
	accn        string
	distance    int32
	orientation string
}

var mateSuffixes = []string{"/1", "/2", ".f", ".r", ".1", ".2"}

// mateStem strips a read-pair suffix such as /1 or /2 from an
// accession, so that the two mates of a template compare equal.
func mateStem(accn string) string {
	for _, suffix := range mateSuffixes {
		if strings.HasSuffix(accn, suffix) {
			return accn[:len(accn)-len(suffix)]
		}
	}
	return accn
}

// collectPairs walks lines ordered by accession and pairs consecutive
// lines that share an accession stem and lie on the same sequence. The
// pair distance is the outer span of the two reads. Pairs farther
// apart than cutoff, or not matching the requested orientation, are
// dropped.
func collectPairs(lines []*bed.BedLine, cutoff int32, orientation string) (pairs []matePair) {
	for i := 0; i+1 < len(lines); i++ {
		b1, b2 := lines[i], lines[i+1]
		stem := mateStem(b1.Accn)
		if stem != mateStem(b2.Accn) || b1.Seqid != b2.Seqid {
			continue
		}
		start, end := b1.Start, b1.End
		if b2.Start < start {
			start = b2.Start
		}
		if b2.End > end {
			end = b2.End
		}
		pair := matePair{
			accn:        stem,
			distance:    end - start + 1,
			orientation: b1.Strand() + b2.Strand(),
		}
		i++
		if cutoff > 0 && pair.distance > cutoff {
			continue
		}
		if orientation != "" && pair.orientation != orientation {
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func reportPairs(pairs []matePair) {
	if len(pairs) == 0 {
		log.Println("No pairs found.")
		return
	}
	distances := make([]float64, len(pairs))
	for i, pair := range pairs {
		distances[i] = float64(pair.distance)
	}
	sort.Float64s(distances)
	log.Printf("Total pairs: %v\n", humanize.Comma(int64(len(pairs))))
	log.Printf("Mean insert size: %.1f bp\n", stat.Mean(distances, nil))
	log.Printf("Median insert size: %.0f bp\n", stat.Quantile(0.5, stat.Empirical, distances, nil))
	log.Printf("Insert size stddev: %.1f bp\n", stat.StdDev(distances, nil))
}

func writePairsFile(filename string, pairs []matePair) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	for _, pair := range pairs {
		if _, err := fmt.Fprintf(file, "%v\t%v\t%v\n", pair.accn, pair.distance, pair.orientation); err != nil {
			return err
		}
	}
	return nil
}

// Pairs implements the pairs command. It loads a BED file of mapped
// reads ordered by accession, pairs mates by their accession stem, and
// reports insert-size statistics.
func Pairs() (err error) {
	var flags flag.FlagSet

	var cutoff, nrows int
	var mateOrientation, logPath string
	var pairsFile bool

	flags.IntVar(&cutoff, "cutoff", 300000, "drop pairs farther apart than this distance, 0 to keep all")
	flags.StringVar(&mateOrientation, "mate-orientation", "", "keep only pairs with this strand orientation")
	flags.IntVar(&nrows, "nrows", 0, "consider only the first nrows lines, 0 for all")
	flags.BoolVar(&pairsFile, "pairs-file", false, "write a .pairs file with one line per mate pair")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 3, PairsHelp)
	bedfile := getFilename(os.Args[2], PairsHelp)

	if logPath != "" {
		setLogOutput(logPath)
	}

	if !checkExist("", bedfile) {
		fmt.Fprint(os.Stderr, PairsHelp)
		os.Exit(1)
	}

	b, err := bed.Load(bedfile, bed.ByAccn)
	if err != nil {
		return err
	}
	if nrows > 0 && b.Len() > nrows {
		b.Lines = b.Lines[:nrows]
	}

	pairs := collectPairs(b.Lines, int32(cutoff), mateOrientation)
	reportPairs(pairs)

	if pairsFile {
		base := filepath.Base(bedfile)
		pairsfile, err := internal.FullPathname(strings.TrimSuffix(base, filepath.Ext(base)) + ".pairs")
		if err != nil {
			return err
		}
		if err := writePairsFile(pairsfile, pairs); err != nil {
			return err
		}
		log.Printf("Pairs written to %v.\n", pairsfile)
	}
	return nil
}
