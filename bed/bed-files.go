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

package bed

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/brentp/xopen"
)

// Load reads a BED file into a Bed collection sorted under the given
// LessFunc, or under ByPosition if less is nil. The file may be
// gzip-compressed, and "-" reads from standard input. Lines starting
// with # are skipped.
//
// An empty filename returns an empty collection without touching the
// file system, for callers that build collections programmatically.
//
// The first malformed line aborts the whole load: Load either returns
// a fully valid collection or no collection at all.
func Load(filename string, less LessFunc) (bed *Bed, err error) {
	bed = New(less)
	if filename == "" {
		return bed, nil
	}
	file, err := xopen.Ropen(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := file.Close(); err == nil && nerr != nil {
			bed, err = nil, nerr
		}
	}()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		bedline, err := NewBedLine(line)
		if err != nil {
			return nil, err
		}
		bed.Lines = append(bed.Lines, bedline)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	bed.Sort()
	return bed, nil
}

// Print writes the collection to w in BED convention, one line per
// interval, in collection order.
func (bed *Bed) Print(w io.Writer) error {
	buf := bufio.NewWriter(w)
	for _, line := range bed.Lines {
		if _, err := buf.WriteString(line.String()); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteToFile writes the collection to the named BED file.
func (bed *Bed) WriteToFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	return bed.Print(file)
}
