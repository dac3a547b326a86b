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
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// Commands invoked without a filename must exit with the usage
// message, not fall over on os.Args[2]. The commands exit rather than
// return, so each one runs in a child test process.
func TestCommandsWithoutFilename(t *testing.T) {
	if name := os.Getenv("JCVI_TEST_COMMAND"); name != "" {
		os.Args = []string{"jcvi", name}
		switch name {
		case "sort":
			_ = Sort()
		case "sum":
			_ = Sum()
		case "pairs":
			_ = Pairs()
		}
		return
	}
	for _, name := range []string{"sort", "sum", "pairs"} {
		child := exec.Command(os.Args[0], "-test.run=TestCommandsWithoutFilename")
		child.Env = append(os.Environ(), "JCVI_TEST_COMMAND="+name)
		out, err := child.CombinedOutput()
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("%v without filename: expected a usage exit, got %v with output %q", name, err, out)
		}
		if code := exitErr.ExitCode(); code != 1 {
			t.Errorf("%v without filename: exit code %v, want 1; output %q", name, code, out)
		}
		if strings.Contains(string(out), "panic") {
			t.Errorf("%v without filename panicked: %q", name, out)
		}
		if !strings.Contains(string(out), "Incorrect number of parameters.") {
			t.Errorf("%v without filename: missing usage message in output %q", name, out)
		}
	}
}
