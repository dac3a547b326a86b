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
	"testing"

	"github.com/Tong-Chen/jcvi/bed"
)

func TestMateStem(t *testing.T) {
	for accn, stem := range map[string]string{
		"read1/1":  "read1",
		"read1/2":  "read1",
		"clone.f":  "clone",
		"clone.r":  "clone",
		"plain":    "plain",
		"deep/1/1": "deep/1",
	} {
		if got := mateStem(accn); got != stem {
			t.Errorf("mateStem(%q) = %q, want %q", accn, got, stem)
		}
	}
}

func pairsBed(t *testing.T, lines ...string) *bed.Bed {
	t.Helper()
	b := bed.New(bed.ByAccn)
	for _, line := range lines {
		bedline, err := bed.NewBedLine(line)
		if err != nil {
			t.Fatal(err)
		}
		b.Lines = append(b.Lines, bedline)
	}
	b.Sort()
	return b
}

func TestCollectPairs(t *testing.T) {
	b := pairsBed(t,
		"chr1\t100\t200\tr1/1\t60\t+",
		"chr1\t800\t900\tr1/2\t60\t-",
		"chr1\t100\t200\tr2/1\t60\t+",
		"chr2\t800\t900\tr2/2\t60\t-",
		"chr1\t0\t50\tsingle",
	)
	pairs := collectPairs(b.Lines, 0, "")
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %v", len(pairs))
	}
	pair := pairs[0]
	if pair.accn != "r1" || pair.distance != 800 || pair.orientation != "+-" {
		t.Errorf("unexpected pair %+v", pair)
	}
}

func TestCollectPairsCutoff(t *testing.T) {
	b := pairsBed(t,
		"chr1\t100\t200\tr1/1\t60\t+",
		"chr1\t800\t900\tr1/2\t60\t-",
	)
	if pairs := collectPairs(b.Lines, 100, ""); len(pairs) != 0 {
		t.Errorf("cutoff failed, got %v pairs", len(pairs))
	}
	if pairs := collectPairs(b.Lines, 800, ""); len(pairs) != 1 {
		t.Errorf("cutoff dropped a pair within range, got %v pairs", len(pairs))
	}
}

func TestCollectPairsOrientation(t *testing.T) {
	b := pairsBed(t,
		"chr1\t100\t200\tr1/1\t60\t+",
		"chr1\t800\t900\tr1/2\t60\t-",
	)
	if pairs := collectPairs(b.Lines, 0, "++"); len(pairs) != 0 {
		t.Errorf("orientation filter failed, got %v pairs", len(pairs))
	}
	if pairs := collectPairs(b.Lines, 0, "+-"); len(pairs) != 1 {
		t.Errorf("orientation filter dropped a matching pair, got %v pairs", len(pairs))
	}
}
