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

package utils

const (
	// ProgramName is "jcvi"
	ProgramName = "jcvi"

	// ProgramVersion is the version of the jcvi binary
	ProgramVersion = "0.1.0"

	// ProgramURL is the repository for the jcvi source code
	ProgramURL = "http://github.com/Tong-Chen/jcvi"
)
