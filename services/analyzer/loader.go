// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package analyzer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
)

// requiredColumns are the headers the engine reads. A snapshot missing
// any of these fails at load time; the aggregations themselves assume a
// schema-valid table and never re-check column presence.
var requiredColumns = []string{
	"Product type",
	"SKU",
	"Price",
	"Availability",
	"Number of products sold",
	"Revenue generated",
	"Stock levels",
	"Lead times",
	"Order quantities",
	"Shipping times",
	"Shipping carriers",
	"Shipping costs",
	"Supplier name",
	"Location",
	"Lead time",
	"Production volumes",
	"Manufacturing lead time",
	"Manufacturing costs",
	"Inspection results",
	"Defect rates",
	"Transportation modes",
	"Routes",
	"Costs",
}

// Dataset is one immutable snapshot of the supply-chain table. It is
// loaded fully into memory at construction and never modified; every
// analysis derives from the same record slice.
type Dataset struct {
	records []Record
}

// Load reads and validates a CSV snapshot.
//
// Failures are reported as *LoadError: the file is missing or
// unreadable, a required column is absent from the header, a numeric
// cell does not parse, or a record violates the schema (negative
// numerics, unknown inspection result). There is no silent coercion of
// malformed cells.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "reading snapshot", Err: err}
	}

	if err := checkHeader(path, data); err != nil {
		return nil, err
	}

	var records []Record
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, &LoadError{Path: path, Reason: "parsing snapshot", Err: err}
	}

	if err := validateRecords(path, records); err != nil {
		return nil, err
	}

	return &Dataset{records: records}, nil
}

// NewDataset builds a snapshot from already-parsed records, applying the
// same schema validation as Load. Used by tests and by callers that
// source records from somewhere other than a CSV file.
func NewDataset(records []Record) (*Dataset, error) {
	if err := validateRecords("<memory>", records); err != nil {
		return nil, err
	}
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Dataset{records: rs}, nil
}

// checkHeader parses only the header row and verifies every required
// column is present, case- and spacing-sensitive.
func checkHeader(path string, data []byte) error {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return &LoadError{Path: path, Reason: "reading header row", Err: err}
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return &LoadError{Path: path, Reason: fmt.Sprintf("missing required column %q", col)}
		}
	}
	return nil
}

// validateRecords runs the struct-tag validators over every record.
func validateRecords(path string, records []Record) error {
	v := validator.New()
	for i, rec := range records {
		if err := v.Struct(rec); err != nil {
			return &LoadError{
				Path:   path,
				Reason: fmt.Sprintf("invalid record at row %d (SKU %q)", i+2, rec.SKU),
				Err:    err,
			}
		}
	}
	return nil
}

// Records returns the snapshot rows in file order. Callers must treat
// the returned slice as read-only.
func (d *Dataset) Records() []Record { return d.records }

// Len returns the number of records in the snapshot.
func (d *Dataset) Len() int { return len(d.records) }

// Categories returns the distinct product types in first-appearance
// order. The first entry is the dashboard's default filter value.
func (d *Dataset) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range d.records {
		pt := d.records[i].ProductType
		if !seen[pt] {
			seen[pt] = true
			out = append(out, pt)
		}
	}
	return out
}

// FilterByCategory returns the records with the given product type, in
// source order. An unknown category yields an empty slice, which is a
// valid (non-error) outcome.
func (d *Dataset) FilterByCategory(productType string) []Record {
	var out []Record
	for i := range d.records {
		if d.records[i].ProductType == productType {
			out = append(out, d.records[i])
		}
	}
	return out
}
