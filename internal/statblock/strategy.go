package statblock

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// lowConfidence is the confidence below which a resolved field is flagged
const lowConfidence = 0.8

// match is a single strategy hit. groups carries any extra captures the
// field assembler needs.
type match struct {
	value      string
	groups     []string
	method     Method
	confidence float64
}

func exact(value string, groups ...string) match {
	return match{value: value, groups: groups, method: MethodExact, confidence: 1}
}

func fuzzy(m FuzzyMatch) match {
	return match{value: m.Value, method: MethodFuzzy, confidence: m.Confidence}
}

// group returns capture i or "" when absent
func (m match) group(i int) string {
	if i < len(m.groups) {
		return m.groups[i]
	}
	return ""
}

// strategy is one matcher in a field's priority chain
type strategy func(d *document) (match, bool)

// chain evaluates strategies in order; the first success wins
type chain []strategy

func (c chain) first(d *document) (match, bool) {
	for _, s := range c {
		if m, ok := s(d); ok {
			return m, true
		}
	}
	return match{}, false
}

// regexStrategy matches re against the text selected by scope and returns
// capture 1 as the value
func regexStrategy(re *regexp.Regexp, scope func(d *document) string) strategy {
	return regexGroupStrategy(re, scope, 0)
}

// regexGroupStrategy is regexStrategy with the value taken from capture
// idx+1. groups holds every capture.
func regexGroupStrategy(re *regexp.Regexp, scope func(d *document) string, idx int) strategy {
	return func(d *document) (match, bool) {
		groups := submatch(re, scope(d))
		if idx >= len(groups) || strings.TrimSpace(groups[idx]) == "" {
			return match{}, false
		}
		return exact(strings.TrimSpace(groups[idx]), groups...), true
	}
}

func fullText(d *document) string { return d.text }

func headerText(d *document) string { return d.header }

func headerBody(d *document) string { return d.body() }

// extraction carries the per-parse accumulator and ledger
type extraction struct {
	doc      *document
	cfg      Config
	logger   *slog.Logger
	stats    Stats
	ledger   []FieldRecord
	warnings []Warning
}

// resolve runs c for field and records exactly one ledger entry. On failure
// fallback is recorded with MethodDefault and the returned bool is false.
func (e *extraction) resolve(field Field, c chain, fallback string) (match, bool) {
	e.stats.Total++

	m, ok := c.first(e.doc)
	if !ok {
		e.record(FieldRecord{Name: field, RawValue: fallback, Method: MethodDefault})
		e.warn(WarningFieldUnresolved, field, "%s not found, using %s", field, fallback)
		return match{value: fallback, method: MethodDefault}, false
	}

	e.stats.Parsed++
	switch m.method {
	case MethodFuzzy:
		e.stats.Fuzzy++
	default:
		e.stats.Exact++
	}
	if m.confidence < lowConfidence {
		e.warn(WarningLowConfidenceMatch, field, "%s: fuzzy match (%d%%)", field, int(m.confidence*100+0.5))
	}

	e.record(FieldRecord{Name: field, RawValue: m.value, Method: m.method, Confidence: m.confidence})
	return m, true
}

func (e *extraction) record(rec FieldRecord) {
	e.logger.Debug("field resolved",
		"field", rec.Name,
		"method", rec.Method,
		"confidence", rec.Confidence,
		"value", rec.RawValue)
	e.ledger = append(e.ledger, rec)
}

func (e *extraction) warn(kind WarningKind, field Field, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// fuzzyNumber is the fallback strategy for numeric fields
func (e *extraction) fuzzyNumber(keywords ...string) strategy {
	return func(d *document) (match, bool) {
		m, ok := Match(keywords, d.headerLines(e.cfg.FuzzyWindow), e.cfg.FuzzyThreshold)
		if !ok {
			return match{}, false
		}
		return fuzzy(m), true
	}
}

// fuzzyKeyword is the fallback strategy for enumerated word fields
func (e *extraction) fuzzyKeyword(candidates ...string) strategy {
	return func(d *document) (match, bool) {
		// the name line is skipped so "Giant Spider" does not read as a type
		lines := d.headerLines(e.cfg.FuzzyWindow)
		if len(lines) > 0 {
			lines = lines[1:]
		}
		m, ok := MatchKeyword(candidates, lines, e.cfg.FuzzyThreshold)
		if !ok {
			return match{}, false
		}
		return fuzzy(m), true
	}
}
