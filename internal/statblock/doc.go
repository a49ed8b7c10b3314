// Package statblock turns freeform creature stat block text into a normalized
// record.
//
// Each ledger field is resolved by an ordered chain of matchers: exact
// patterns first, then an edit-distance fallback over the leading lines, then
// a default. Every field gets exactly one ledger entry recording how its value
// was obtained. Saves and skills are inferred by comparing stated bonuses with
// the ability modifiers and the proficiency bonus for the challenge rating.
//
// Parsing is deterministic: the same text always yields the same result.
// Overrides edit a single field after the fact and never re-derive dependent
// values.
package statblock
