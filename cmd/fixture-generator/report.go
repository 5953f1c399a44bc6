package main

import (
	"fmt"
	"io"
	"slices"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/mapping"
	"fixture-generator/internal/match"
)

// checkOverride files the findings about the override of one field.
func checkOverride(
	diags *diagnostic.Diagnostics,
	ov mapping.FieldOverride,
	field *analyze.FieldInfo,
	known []string,
	source, path string,
) {
	diags.AddProblems(ov.Problems(field.Type.Family(), field.Type.ValueKind()), source, path)
	checkStrategies(diags, ov, known, source, path)
}

// checkStrategies reports strategy names missing from known. Nothing is
// reported when known is empty.
func checkStrategies(diags *diagnostic.Diagnostics, ov mapping.FieldOverride, known []string, source, path string) {
	if common.IsEmpty(known) {
		return
	}

	for _, name := range ov.Strategies() {
		if slices.Contains(known, name) {
			continue
		}

		diags.AddWarning(
			"unknown_strategy",
			"strategy "+name+" is not registered",
			source,
			path,
			match.Suggest(name, known, match.DefaultThreshold, 3)...,
		)
	}
}

// fieldsOf lists the fields of a struct with the fields promoted from its
// embedded structs, the shallowest declaration of a name winning.
func fieldsOf(info *analyze.TypeInfo) map[string]*analyze.FieldInfo {
	res := make(map[string]*analyze.FieldInfo)
	seen := make(map[*analyze.TypeInfo]bool)

	level := []*analyze.TypeInfo{info}
	for len(level) > 0 {
		var next []*analyze.TypeInfo
		found := make(map[string]*analyze.FieldInfo)

		for _, t := range level {
			if t == nil || seen[t] || t.Kind != analyze.TypeKindStruct {
				continue
			}
			seen[t] = true

			for i := range t.Fields {
				f := &t.Fields[i]
				if f.Embedded && f.Type.Kind == analyze.TypeKindStruct {
					next = append(next, f.Type)
					continue
				}
				if _, ok := res[f.Name]; !ok {
					found[f.Name] = f
				}
			}
		}

		for name, f := range found {
			res[name] = f
		}
		level = next
	}

	return res
}

// summarize prints the diagnostics and turns errors into the command error.
func summarize(w io.Writer, diags *diagnostic.Diagnostics, what string) error {
	if err := diags.Print(w); err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d errors, %d warnings", what, len(diags.Errors), len(diags.Warnings))
	}

	_, err := fmt.Fprintf(w, "%s: ok, %d warnings\n", what, len(diags.Warnings))
	return err
}
