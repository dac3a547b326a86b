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

package sizes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.sizes")
	err := os.WriteFile(filename, []byte("# assembly v1\nchr1\t100\nchr2\t2500\n\n"), 0666)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Load(filename)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("loaded %v sizes, want 2", s.Len())
	}
	size, err := s.GetSize("chr2")
	if err != nil || size != 2500 {
		t.Errorf("GetSize(chr2) = %v, %v; want 2500", size, err)
	}
	seqids := s.Seqids()
	if len(seqids) != 2 || seqids[0] != "chr1" || seqids[1] != "chr2" {
		t.Errorf("unexpected seqids %v", seqids)
	}
}

func TestLoadInvalid(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.sizes")
	if err := os.WriteFile(filename, []byte("chr1\tnot-a-number\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filename); err == nil {
		t.Error("Load of an invalid sizes file must fail")
	}
}

func TestGetSizeNotFound(t *testing.T) {
	s := New(map[string]int32{"chr1": 100})
	_, err := s.GetSize("chrX")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) || nferr.Seqid != "chrX" {
		t.Errorf("expected NotFoundError for chrX, got %v", err)
	}
}
