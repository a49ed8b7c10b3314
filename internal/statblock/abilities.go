package statblock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var abilityLabels = map[Ability]string{
	Strength:     `str(?:ength)?`,
	Dexterity:    `dex(?:terity)?`,
	Constitution: `con(?:stitution)?`,
	Intelligence: `int(?:elligence)?`,
	Wisdom:       `wis(?:dom)?`,
	Charisma:     `cha(?:risma)?`,
}

// inlineScores builds "STR n<suffix> DEX n<suffix> ..." for one layout
func inlineScores(suffix string) *regexp.Regexp {
	parts := make([]string, 0, len(Abilities))
	for _, ab := range Abilities {
		parts = append(parts, strings.ToUpper(string(ab))+`\s+(\d+)`+suffix)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(parts, `\s+`))
}

// headerRowScores matches a row of six labels followed by a row of six scores
func headerRowScores() *regexp.Regexp {
	labels := make([]string, 0, len(Abilities))
	scores := make([]string, 0, len(Abilities))
	for _, ab := range Abilities {
		labels = append(labels, strings.ToUpper(string(ab)))
		scores = append(scores, `(\d+)(?:\s*\(?[+-]\d+\)?)?`)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(labels, `\s+`) + `\s+` + strings.Join(scores, `\s+`))
}

var (
	abilitiesPlain     = inlineScores(``)
	abilitiesParen     = inlineScores(`\s*\([+-]\d+\)`)
	abilitiesSigned    = inlineScores(`\s*[+-]\d+`)
	abilitiesHeaderRow = headerRowScores()

	// table rows: "Str 16 +3 +5" (score, modifier, save)
	abilityTableRows = tableRows()
	abilityLoose     = looseScores()
)

func tableRows() map[Ability]*regexp.Regexp {
	rows := make(map[Ability]*regexp.Regexp, len(Abilities))
	for _, ab := range Abilities {
		rows[ab] = regexp.MustCompile(`(?i)\b` + string(ab) + `\s+(\d+)\s+[+-]?\d+\s+[+-]?\d+`)
	}
	return rows
}

func looseScores() map[Ability]*regexp.Regexp {
	loose := make(map[Ability]*regexp.Regexp, len(Abilities))
	for _, ab := range Abilities {
		loose[ab] = regexp.MustCompile(`(?i)\b` + abilityLabels[ab] + `[:\s]+(\d+)\b`)
	}
	return loose
}

// scoresMatch renders six scores as the ledger value and keeps them as groups
func scoresMatch(scores []string) match {
	var b strings.Builder
	for i, ab := range Abilities {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %s", strings.ToUpper(string(ab)), scores[i])
	}
	return exact(b.String(), scores...)
}

func sixScores(re *regexp.Regexp) strategy {
	return func(d *document) (match, bool) {
		groups := submatch(re, d.text)
		if len(groups) != len(Abilities) {
			return match{}, false
		}
		return scoresMatch(groups), true
	}
}

func tableScores(d *document) (match, bool) {
	scores := make([]string, 0, len(Abilities))
	for _, ab := range Abilities {
		groups := submatch(abilityTableRows[ab], d.text)
		if groups == nil {
			return match{}, false
		}
		scores = append(scores, groups[0])
	}
	return scoresMatch(scores), true
}

// individualScores accepts any labelled scores it finds; missing ones stay 10
func individualScores(d *document) (match, bool) {
	scores := make([]string, 0, len(Abilities))
	found := 0
	for _, ab := range Abilities {
		if groups := submatch(abilityLoose[ab], d.header); groups != nil {
			scores = append(scores, groups[0])
			found++
			continue
		}
		scores = append(scores, "10")
	}
	if found == 0 {
		return match{}, false
	}
	return scoresMatch(scores), true
}

var abilityChain = chain{
	sixScores(abilitiesPlain),
	sixScores(abilitiesParen),
	sixScores(abilitiesSigned),
	sixScores(abilitiesHeaderRow),
	tableScores,
	individualScores,
}

// scoresFromMatch reads the six groups back into a score set
func scoresFromMatch(m match) AbilityScores {
	scores := DefaultAbilityScores()
	for i, ab := range Abilities {
		if v, err := strconv.Atoi(m.group(i)); err == nil {
			scores.Set(ab, v)
		}
	}
	return scores
}

// ParseAbilityScores runs the ability strategies over a standalone text
func ParseAbilityScores(text string) (AbilityScores, bool) {
	m, ok := abilityChain.first(newDocument(text))
	if !ok {
		return DefaultAbilityScores(), false
	}
	return scoresFromMatch(m), true
}
