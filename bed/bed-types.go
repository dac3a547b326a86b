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

// Package bed models BED files as sorted collections of genomic
// intervals. See https://genome.ucsc.edu/FAQ/FAQformat.html#format1
// for the file format.
//
// BED files store 0-based, half-open [start, end) coordinates. This
// package converts them on input to 1-based, closed [Start, End]
// coordinates, which is also what the intervals package expects, and
// converts back on output.
package bed

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	psort "github.com/exascience/pargo/sort"

	"github.com/Tong-Chen/jcvi/intervals"
)

// A FormatError reports a malformed BED line.
type FormatError struct {
	Line string
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed BED line %q: %v", e.Line, e.Msg)
}

// A BedLine is a single interval parsed from one line of a BED file.
// The BED format supports up to twelve columns; only the first four
// are interpreted, the rest is kept verbatim in Extra so that lines
// round-trip unchanged.
type BedLine struct {
	// Seqid is the sequence or chromosome name. A trailing "-"
	// marks a sequence whose orientation has been flipped by
	// ReverseComplement.
	Seqid string
	// Start and End are 1-based, closed coordinates. Start <= End
	// holds for every BedLine constructed by this package.
	Start int32
	End   int32
	// Accn is the feature accession, the fourth BED column. It need
	// not be unique within a file.
	Accn string
	// Extra holds all columns beyond the fourth, verbatim. The score
	// and strand columns are views into Extra, not separate copies.
	Extra []string
}

// NewBedLine parses one tab-separated BED line. The line must have at
// least four columns; coordinates are converted from the file's
// 0-based, half-open convention to 1-based, closed coordinates.
func NewBedLine(line string) (*BedLine, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < 4 {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("%v columns, need at least 4", len(fields))}
	}
	start, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("invalid start coordinate: %v", err)}
	}
	end, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("invalid end coordinate: %v", err)}
	}
	b := &BedLine{
		Seqid: fields[0],
		Start: int32(start) + 1,
		End:   int32(end),
		Accn:  fields[3],
	}
	if len(fields) > 4 {
		b.Extra = fields[4:]
	}
	if b.Start > b.End {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("start=%v end=%v", b.Start, b.End)}
	}
	return b, nil
}

// Score returns the score column, or "" if the line has no fifth
// column. The score is not validated or interpreted numerically.
func (b *BedLine) Score() string {
	if len(b.Extra) > 0 {
		return b.Extra[0]
	}
	return ""
}

// Strand returns the strand column, or "" if the line has no sixth
// column. Normally "+" or "-", but this is not enforced at parse time.
func (b *BedLine) Strand() string {
	if len(b.Extra) > 1 {
		return b.Extra[1]
	}
	return ""
}

// String formats the line in BED convention, converting the
// coordinates back to 0-based, half-open. Extra columns are emitted
// verbatim, so String is the exact inverse of NewBedLine.
func (b *BedLine) String() string {
	fields := make([]string, 0, 4+len(b.Extra))
	fields = append(fields,
		b.Seqid,
		strconv.FormatInt(int64(b.Start)-1, 10),
		strconv.FormatInt(int64(b.End), 10),
		b.Accn)
	fields = append(fields, b.Extra...)
	return strings.Join(fields, "\t")
}

// A SizeGetter maps a sequence name onto its total length in bases.
// *sizes.Sizes implements this interface.
type SizeGetter interface {
	GetSize(seqid string) (int32, error)
}

// ReverseComplement re-expresses the line in the coordinate frame of
// the opposite strand of its sequence, reflecting the coordinates
// around the sequence length and toggling the trailing "-" orientation
// marker on Seqid. If the strand column is set it is flipped as well.
// Applying ReverseComplement twice restores the original line.
//
// The size of the unmarked sequence is obtained from sizes; a lookup
// failure is returned as is.
func (b *BedLine) ReverseComplement(sizes SizeGetter) error {
	seqid := strings.TrimRight(b.Seqid, "-")
	size, err := sizes.GetSize(seqid)
	if err != nil {
		return err
	}
	strand := b.Strand()
	switch strand {
	case "", "+", "-":
	default:
		// Validated before any mutation, so a failed call leaves the
		// line untouched.
		return &FormatError{Line: b.String(), Msg: fmt.Sprintf("invalid strand %v", strand)}
	}
	if strings.HasSuffix(b.Seqid, "-") {
		b.Seqid = b.Seqid[:len(b.Seqid)-1]
	} else {
		b.Seqid += "-"
	}
	start := size - b.End + 1
	end := size - b.Start + 1
	b.Start, b.End = start, end
	if b.Start > b.End {
		return &FormatError{Line: b.String(), Msg: fmt.Sprintf("start=%v end=%v", b.Start, b.End)}
	}
	switch strand {
	case "+":
		b.Extra[1] = "-"
	case "-":
		b.Extra[1] = "+"
	}
	return nil
}

// A LessFunc is a total order over BED lines, used as the sort key of
// a Bed collection.
type LessFunc func(b1, b2 *BedLine) bool

// ByPosition orders lines by (Seqid, Start, Accn), ascending. This is
// the default order of a Bed collection.
func ByPosition(b1, b2 *BedLine) bool {
	if b1.Seqid != b2.Seqid {
		return b1.Seqid < b2.Seqid
	}
	if b1.Start != b2.Start {
		return b1.Start < b2.Start
	}
	return b1.Accn < b2.Accn
}

// ByAccn orders lines by (Accn, Seqid, Start), ascending. Useful when
// features are looked up by name, for example when pairing reads.
func ByAccn(b1, b2 *BedLine) bool {
	if b1.Accn != b2.Accn {
		return b1.Accn < b2.Accn
	}
	if b1.Seqid != b2.Seqid {
		return b1.Seqid < b2.Seqid
	}
	return b1.Start < b2.Start
}

// A Bed is an ordered collection of BED lines. The collection is
// sorted under its configured LessFunc at load time and stays sorted;
// the grouping and index methods below all assume that order.
type Bed struct {
	Lines []*BedLine

	less LessFunc
}

// New allocates an empty Bed ordered by the given LessFunc, or by
// ByPosition if less is nil. Callers that build a Bed line by line
// must call Sort before using the collection.
func New(less LessFunc) *Bed {
	if less == nil {
		less = ByPosition
	}
	return &Bed{less: less}
}

// Len returns the number of lines in the collection.
func (bed *Bed) Len() int {
	return len(bed.Lines)
}

// Sort restores the collection order under its configured LessFunc.
// The sort is stable.
func (bed *Bed) Sort() {
	sort.SliceStable(bed.Lines, func(i, j int) bool {
		return bed.less(bed.Lines[i], bed.Lines[j])
	})
}

type stableLineSorter struct {
	lines []*BedLine
	less  LessFunc
}

func (s stableLineSorter) SequentialSort(i, j int) {
	lines := s.lines[i:j]
	sort.SliceStable(lines, func(i, j int) bool {
		return s.less(lines[i], lines[j])
	})
}

func (s stableLineSorter) NewTemp() psort.StableSorter {
	return stableLineSorter{lines: make([]*BedLine, len(s.lines)), less: s.less}
}

func (s stableLineSorter) Len() int {
	return len(s.lines)
}

func (s stableLineSorter) Less(i, j int) bool {
	return s.less(s.lines[i], s.lines[j])
}

func (s stableLineSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s.lines, source.(stableLineSorter).lines
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// ParallelSort is Sort using a parallel stable sort, for large
// collections.
func (bed *Bed) ParallelSort() {
	psort.StableSort(stableLineSorter{lines: bed.Lines, less: bed.less})
}

// Seqids returns the distinct sequence names in the collection, in
// ascending lexical order regardless of the collection's sort key.
func (bed *Bed) Seqids() []string {
	seen := make(map[string]bool)
	var seqids []string
	for _, line := range bed.Lines {
		if !seen[line.Seqid] {
			seen[line.Seqid] = true
			seqids = append(seqids, line.Seqid)
		}
	}
	sort.Strings(seqids)
	return seqids
}

// Accns returns the distinct accessions in the collection, in
// ascending lexical order.
func (bed *Bed) Accns() []string {
	seen := make(map[string]bool)
	var accns []string
	for _, line := range bed.Lines {
		if !seen[line.Accn] {
			seen[line.Accn] = true
			accns = append(accns, line.Accn)
		}
	}
	sort.Strings(accns)
	return accns
}

// An OrderedLine is a BED line together with its 0-based position in
// the sorted collection it came from.
type OrderedLine struct {
	Pos  int
	Line *BedLine
}

// Order returns the gene order index: a map from accession to the
// position and line of that accession in the sorted collection. When
// an accession occurs more than once, the mapping keeps only the last
// occurrence in collection order.
func (bed *Bed) Order() map[string]OrderedLine {
	order := make(map[string]OrderedLine, len(bed.Lines))
	for i, line := range bed.Lines {
		order[line.Accn] = OrderedLine{Pos: i, Line: line}
	}
	return order
}

// A SimplePos is a sequence name together with a position in the
// sorted collection.
type SimplePos struct {
	Seqid string
	Pos   int
}

// SimpleBed returns the (seqid, position) pair of every line in
// collection order.
func (bed *Bed) SimpleBed() []SimplePos {
	simple := make([]SimplePos, len(bed.Lines))
	for i, line := range bed.Lines {
		simple[i] = SimplePos{Seqid: line.Seqid, Pos: i}
	}
	return simple
}

// SubBed returns all lines on the given sequence, in collection
// order. The result is a fresh slice filtered from the full
// collection on every call; nothing is cached.
func (bed *Bed) SubBed(seqid string) []*BedLine {
	var lines []*BedLine
	for _, line := range bed.Lines {
		if line.Seqid == seqid {
			lines = append(lines, line)
		}
	}
	return lines
}

// SubBeds calls f once per distinct sequence, in ascending sequence
// order, with all lines on that sequence in collection order. If f
// returns false, SubBeds stops early. Each group is filtered from the
// full collection when its turn comes.
func (bed *Bed) SubBeds(f func(seqid string, lines []*BedLine) bool) {
	for _, seqid := range bed.Seqids() {
		if !f(seqid, bed.SubBed(seqid)) {
			return
		}
	}
}

// Intervals groups the collection's coordinate ranges by sequence
// name, in the shape the intervals package operates on.
func (bed *Bed) Intervals() map[string][]intervals.Interval {
	ivals := make(map[string][]intervals.Interval)
	for _, line := range bed.Lines {
		ivals[line.Seqid] = append(ivals[line.Seqid], intervals.Interval{Start: line.Start, End: line.End})
	}
	return ivals
}

// Sum returns the total number of bases covered by the collection,
// counting regions covered by overlapping lines once. An empty
// collection covers 0 bases.
func (bed *Bed) Sum() int64 {
	return intervals.Union(bed.Intervals())
}
