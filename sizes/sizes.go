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

// Package sizes reads .sizes files, two-column tab-separated files
// mapping sequence names to their lengths in bases.
package sizes

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brentp/xopen"
)

// A NotFoundError is returned when a sequence name is not present in
// the size table.
type NotFoundError struct {
	Seqid string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sequence %v not found in size table", e.Seqid)
}

// Sizes maps sequence names onto their total lengths.
type Sizes struct {
	sizes map[string]int32
}

// New creates a Sizes from an existing name to length mapping.
func New(table map[string]int32) *Sizes {
	return &Sizes{sizes: table}
}

// Load reads a .sizes file. Lines starting with # are skipped.
func Load(filename string) (s *Sizes, err error) {
	file, err := xopen.Ropen(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	s = &Sizes{sizes: make(map[string]int32)}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("invalid sizes line %v", line)
		}
		size, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid size in sizes line %v: %v", line, err)
		}
		s.sizes[fields[0]] = int32(size)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSize returns the total length of the named sequence, or a
// NotFoundError if the sequence is not in the table.
func (s *Sizes) GetSize(seqid string) (int32, error) {
	size, ok := s.sizes[seqid]
	if !ok {
		return 0, &NotFoundError{Seqid: seqid}
	}
	return size, nil
}

// Len returns the number of sequences in the table.
func (s *Sizes) Len() int {
	return len(s.sizes)
}

// Seqids returns the sequence names in the table in ascending order.
func (s *Sizes) Seqids() []string {
	seqids := make([]string, 0, len(s.sizes))
	for seqid := range s.sizes {
		seqids = append(seqids, seqid)
	}
	sort.Strings(seqids)
	return seqids
}
