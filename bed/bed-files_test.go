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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "test.bed")
	if err := os.WriteFile(filename, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoad(t *testing.T) {
	filename := writeTestFile(t, strings.Join([]string{
		"# a comment line",
		"chr2\t100\t200\tg1",
		"chr1\t50\t80\tg2\t900\t-",
		"chr1\t10\t20\tg3",
		"",
	}, "\n"))
	bed, err := Load(filename, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if bed.Len() != 3 {
		t.Fatalf("loaded %v lines, want 3", bed.Len())
	}
	want := []string{"g3", "g2", "g1"}
	for i, accn := range want {
		if bed.Lines[i].Accn != accn {
			t.Errorf("line %v is %v, want %v", i, bed.Lines[i].Accn, accn)
		}
	}
	if bed.Lines[1].Strand() != "-" {
		t.Error("optional fields lost during load")
	}
}

func TestLoadEmptyFilename(t *testing.T) {
	bed, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load of empty filename failed: %v", err)
	}
	if bed.Len() != 0 {
		t.Errorf("empty filename loaded %v lines", bed.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such.bed"), nil); err == nil {
		t.Error("Load of a missing file must fail")
	}
}

func TestLoadAbortsOnFormatError(t *testing.T) {
	filename := writeTestFile(t, "chr1\t10\t20\tg1\nchr1\t30\t25\tg2\n")
	_, err := Load(filename, nil)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("expected FormatError, got %v", err)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	contents := "chr1\t10\t20\tg3\nchr1\t50\t80\tg2\t900\t-\nchr2\t100\t200\tg1\n"
	filename := writeTestFile(t, contents)
	bed, err := Load(filename, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := bed.Print(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != contents {
		t.Errorf("print round trip failed:\ngot  %q\nwant %q", buf.String(), contents)
	}
}

func TestWriteToFile(t *testing.T) {
	bed, err := Load(writeTestFile(t, "chr2\t100\t200\tg1\nchr1\t10\t20\tg2\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.bed")
	if err := bed.WriteToFile(out); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Len() != bed.Len() {
		t.Fatalf("reloaded %v lines, want %v", reloaded.Len(), bed.Len())
	}
	for i := range bed.Lines {
		if reloaded.Lines[i].String() != bed.Lines[i].String() {
			t.Errorf("line %v changed across write/load: %v", i, reloaded.Lines[i])
		}
	}
}
