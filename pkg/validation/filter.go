// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for user-facing
// surfaces.
//
// This package contains validators for values that arrive from outside
// the process (dashboard query parameters, export paths) before they are
// used to filter data or name files on disk.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// categoryPattern matches dataset category values.
// Allows: letters, digits, spaces, hyphens, ampersands
// Max length: 64 characters
var categoryPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 &\-]{0,63}$`)

// ValidateCategory validates a product-category filter value from a
// query string before it is matched against the dataset.
//
// Valid categories:
//   - 1-64 characters
//   - Letters and digits
//   - Spaces, hyphens, ampersands (e.g. "health & beauty")
//
// Returns an error if the value is empty or contains other characters.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	if !categoryPattern.MatchString(category) {
		return fmt.Errorf("invalid category format: %q (must be 1-64 alphanumeric chars, spaces, hyphens, or ampersands)", category)
	}

	return nil
}

// ValidateExportPath validates a user-supplied artifact path.
//
// Rejects empty paths, parent-directory traversal, and NUL bytes. The
// caller is still responsible for write-permission failures, which
// surface when the file is opened.
func ValidateExportPath(path string) error {
	if path == "" {
		return fmt.Errorf("export path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("export path contains NUL byte")
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return fmt.Errorf("export path must not contain '..': %q", path)
		}
	}
	return nil
}
