// Package fixtures runs stat block fixture suites and compares JSON documents
// structurally
package fixtures

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// Severity ranks a difference
type Severity string

// Severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue names the kind of difference
type Issue string

// Issues
const (
	IssueTypeMismatch   Issue = "type_mismatch"
	IssueMissingKey     Issue = "missing_key"
	IssueExtraKey       Issue = "extra_key"
	IssueValueMismatch  Issue = "value_mismatch"
	IssueNullMismatch   Issue = "null_mismatch"
	IssueArrayEmpty     Issue = "array_empty"
	IssueArrayNotEmpty  Issue = "array_not_empty"
	IssueLengthMismatch Issue = "length_mismatch"
	IssueBelowMinimum   Issue = "below_minimum"
)

var issueSeverity = map[Issue]Severity{
	IssueTypeMismatch:   SeverityError,
	IssueMissingKey:     SeverityError,
	IssueExtraKey:       SeverityInfo,
	IssueValueMismatch:  SeverityWarning,
	IssueNullMismatch:   SeverityWarning,
	IssueArrayEmpty:     SeverityWarning,
	IssueArrayNotEmpty:  SeverityInfo,
	IssueLengthMismatch: SeverityWarning,
	IssueBelowMinimum:   SeverityError,
}

// Difference is one divergence between an expected and an actual document
type Difference struct {
	Path     string   `json:"path" yaml:"path"`
	Issue    Issue    `json:"issue" yaml:"issue"`
	Expected string   `json:"expected" yaml:"expected"`
	Actual   string   `json:"actual" yaml:"actual"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Summary counts differences by severity
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Summarize counts differences by severity
func Summarize(diffs []Difference) Summary {
	var s Summary
	for _, d := range diffs {
		switch d.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
	return s
}

// Normalize round-trips v through JSON so structs, yaml maps and decoded
// JSON compare the same way
func Normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal value")
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal value")
	}
	return out, nil
}

// Compare normalizes both values and diffs them
func Compare(expected, actual any) ([]Difference, error) {
	exp, err := Normalize(expected)
	if err != nil {
		return nil, errors.Wrap(err, "expected")
	}
	act, err := Normalize(actual)
	if err != nil {
		return nil, errors.Wrap(err, "actual")
	}
	return Diff(exp, act), nil
}

// Diff compares two normalized JSON values. Keys are walked in sorted order
// so the result is stable.
func Diff(expected, actual any) []Difference {
	diffs := []Difference{}
	diffValue(&diffs, "", expected, actual)
	return diffs
}

func diffValue(diffs *[]Difference, path string, expected, actual any) {
	expType, actType := kindOf(expected), kindOf(actual)

	switch {
	case expType == "null" && actType != "null":
		add(diffs, path, IssueNullMismatch, "null", actType)
		return
	case expType != actType:
		add(diffs, path, IssueTypeMismatch, expType, actType)
		return
	}

	switch exp := expected.(type) {
	case map[string]any:
		diffObject(diffs, path, exp, actual.(map[string]any))
	case []any:
		diffArray(diffs, path, exp, actual.([]any))
	default:
		if expected != actual {
			add(diffs, path, IssueValueMismatch, render(expected), render(actual))
		}
	}
}

func diffObject(diffs *[]Difference, path string, expected, actual map[string]any) {
	for _, key := range sortedKeys(expected) {
		child := join(path, key)
		value, ok := actual[key]
		if !ok {
			add(diffs, child, IssueMissingKey, fmt.Sprintf("key %q exists", key), "key missing")
			continue
		}
		diffValue(diffs, child, expected[key], value)
	}
	for _, key := range sortedKeys(actual) {
		if _, ok := expected[key]; !ok {
			add(diffs, join(path, key), IssueExtraKey, "key not present", fmt.Sprintf("key %q exists", key))
		}
	}
}

func diffArray(diffs *[]Difference, path string, expected, actual []any) {
	switch {
	case len(expected) == 0 && len(actual) > 0:
		add(diffs, path, IssueArrayNotEmpty, "empty array", fmt.Sprintf("array with %d items", len(actual)))
		return
	case len(expected) > 0 && len(actual) == 0:
		add(diffs, path, IssueArrayEmpty, "array with items", "empty array")
		return
	case len(expected) != len(actual):
		add(diffs, path, IssueLengthMismatch, fmt.Sprintf("%d items", len(expected)), fmt.Sprintf("%d items", len(actual)))
	}

	n := min(len(expected), len(actual))
	for i := range n {
		diffValue(diffs, fmt.Sprintf("%s[%d]", rootOr(path), i), expected[i], actual[i])
	}
}

func add(diffs *[]Difference, path string, issue Issue, expected, actual string) {
	*diffs = append(*diffs, Difference{
		Path:     rootOr(path),
		Issue:    issue,
		Expected: expected,
		Actual:   actual,
		Severity: issueSeverity[issue],
	})
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func rootOr(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
