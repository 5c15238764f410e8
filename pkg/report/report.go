// Package report produces the comprehensive validation reports: every check
// runs, findings accumulate into per-category buckets, and the result is
// rendered either as a colorized transcript or as machine-readable JSON.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gatewerk/pipecheck/pkg/catalog"
	"github.com/gatewerk/pipecheck/pkg/loader"
	"github.com/gatewerk/pipecheck/pkg/validate"
)

// Status values for a report.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Report is the machine-readable validation result.
type Report struct {
	// File is the path of the validated document
	File string `json:"file"`

	// Status is "pass" or "fail"
	Status string `json:"status"`

	// ErrorCount is the number of fatal findings
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of advisory findings
	WarningCount int `json:"warning_count"`

	// Results lists all findings in evaluation order
	Results []string `json:"results"`

	// Categories maps each check category to "pass" or "fail"
	Categories map[string]string `json:"categories"`
}

// Options configures a comprehensive validation run.
type Options struct {
	// Catalog enables node-type verification when set
	Catalog catalog.Catalog
}

// File runs the comprehensive validation over a document on disk.
func File(ctx context.Context, path string, opts Options) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	acc := validate.Strict(data)

	// Catalog verification needs the typed model, which is only available
	// once the document parses.
	if opts.Catalog != nil && acc.CategoryOK(validate.CategorySyntax) {
		if doc, err := loader.ParseDocument(data); err == nil {
			validate.CheckCatalog(ctx, doc, opts.Catalog, acc)
		}
	}

	return Build(path, acc), nil
}

// Build renders an accumulator into a report.
func Build(file string, acc *validate.Accumulator) *Report {
	r := &Report{
		File:         file,
		Status:       StatusPass,
		ErrorCount:   len(acc.Errors),
		WarningCount: len(acc.Warnings),
		Results:      make([]string, 0, len(acc.Errors)+len(acc.Warnings)),
		Categories:   make(map[string]string, 3),
	}
	if !acc.OK() {
		r.Status = StatusFail
	}

	for _, e := range acc.Errors {
		r.Results = append(r.Results, fmt.Sprintf("error: %s", e.Error()))
	}
	for _, w := range acc.Warnings {
		r.Results = append(r.Results, fmt.Sprintf("warning: %s", w.Message))
	}

	for _, cat := range []validate.Category{validate.CategorySyntax, validate.CategoryStructure, validate.CategoryReferential} {
		status := StatusPass
		if !acc.CategoryOK(cat) {
			status = StatusFail
		}
		r.Categories[string(cat)] = status
	}

	return r
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
