package statblock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sizes lists the creature sizes from smallest to largest
var Sizes = []string{"tiny", "small", "medium", "large", "huge", "gargantuan"}

// CreatureTypes lists the recognized creature types
var CreatureTypes = []string{
	"aberration", "beast", "celestial", "construct", "dragon", "elemental", "fey",
	"fiend", "giant", "humanoid", "monstrosity", "ooze", "plant", "undead",
}

// most specific first; "neutral" alone must come last
var alignments = []string{
	"any non-good alignment", "any non-lawful alignment", "any chaotic alignment",
	"any evil alignment", "any alignment", "lawful good", "lawful neutral", "lawful evil",
	"neutral good", "neutral evil", "chaotic good", "chaotic neutral", "chaotic evil",
	"true neutral", "unaligned", "neutral",
}

const (
	sizePattern = `tiny|small|medium|large|huge|gargantuan`
	typePattern = `aberration|beast|celestial|construct|dragon|elemental|fey|fiend|giant|humanoid|monstrosity|ooze|plant|undead`
	crPattern   = `(\d+/\d+|\d+(?:\.\d+)?)`
)

var (
	sizeType      = regexp.MustCompile(`(?i)\b(` + sizePattern + `)\s+(?:swarm of \w+\s+)?(` + typePattern + `)s?\b`)
	sizeWord      = regexp.MustCompile(`(?i)\b(` + sizePattern + `)\b`)
	typeWord      = regexp.MustCompile(`(?i)\b(` + typePattern + `)s?\b`)
	subtypeParen  = regexp.MustCompile(`(?i)\b(?:` + typePattern + `)s?\s*\(([^)]+)\)`)
	alignAfter    = regexp.MustCompile(`(?im)\b(?:` + sizePattern + `)\s+[^,\n]*,\s*([^\n]+?)\s*$`)
	alignLabel    = regexp.MustCompile(`(?im)\balignment[: \t]+([^\n]+?)\s*$`)
	armorClass    = regexp.MustCompile(`(?i)\b(?:AC|Armou?r Class)[:\s]*(\d+)(?:\s*\(([^)]+)\))?`)
	hitPoints     = regexp.MustCompile(`(?i)\b(?:HP|Hit Points)[:\s]*(\d+)(?:\s*\(([^)]+)\))?`)
	speedLine     = regexp.MustCompile(`(?i)\bspeed[:\s]+((\d+)\s*ft\b[^\n]*)`)
	speedMode     = regexp.MustCompile(`(?i)\b(fly|climb|swim|burrow)\s+(\d+)\s*ft`)
	speedHover    = regexp.MustCompile(`(?i)\bhover\b`)
	crParen       = regexp.MustCompile(`(?i)\bCR\s+` + crPattern + `\s*\(`)
	crChallenge   = regexp.MustCompile(`(?i)\bchallenge[:\s]+` + crPattern)
	crLabel       = regexp.MustCompile(`(?i)\bCR[:\s]+` + crPattern)
	crLineHint    = regexp.MustCompile(`(?i)challenge|^cr\s`)
	crLineArmor   = regexp.MustCompile(`(?i)armor|\bac\b`)
	crLineValue   = regexp.MustCompile(`(\d+/\d+|\d+)`)
	savesLabel    = regexp.MustCompile(`(?im)(?:\bsaving throws|^\s*saves?)[:\s]+`)
	saveTableRow  = regexp.MustCompile(`(?i)\b(str|dex|con|int|wis|cha)\s+(\d+)\s+([+-]?\d+)\s+([+-]\d+)`)
	skillsLabel   = regexp.MustCompile(`(?i)\bskills[:\s]+`)
	sensesLabel   = regexp.MustCompile(`(?i)\bsenses[:\s]+`)
	senseRange    = regexp.MustCompile(`(?i)^(darkvision|blindsight|tremorsense|truesight)\s+(\d+)\s*ft`)
	passive       = regexp.MustCompile(`(?i)^passive perception\s+(\d+)`)
	languageLabel = regexp.MustCompile(`(?i)\blanguages[:\s]+`)
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	initiative    = regexp.MustCompile(`(?i)\binitiative[:\s]+([+-]\d+)`)

	defenseLabels = map[string]*regexp.Regexp{
		"damage immunities":      regexp.MustCompile(`(?i)\bdamage immunities[:\s]+`),
		"damage resistances":     regexp.MustCompile(`(?i)\bdamage resistances[:\s]+`),
		"damage vulnerabilities": regexp.MustCompile(`(?i)\bdamage vulnerabilities[:\s]+`),
		"condition immunities":   regexp.MustCompile(`(?i)\bcondition immunities[:\s]+`),
	}
)

func (e *extraction) name(r *ParseResult) {
	first := func(d *document) (match, bool) {
		if d.empty() {
			return match{}, false
		}
		return exact(d.lines[0]), true
	}
	m, _ := e.resolve(FieldName, chain{first}, "Unknown")
	r.Name = m.value
}

func (e *extraction) size(r *ParseResult) {
	m, _ := e.resolve(FieldSize, chain{
		regexStrategy(sizeType, headerText),
		regexStrategy(sizeWord, headerBody),
		e.fuzzyKeyword(Sizes...),
	}, "medium")
	r.Size = strings.ToLower(m.value)
}

func (e *extraction) creatureType(r *ParseResult) {
	var candidates []string
	for _, t := range CreatureTypes {
		if len(t) >= 5 {
			candidates = append(candidates, t)
		}
	}

	m, _ := e.resolve(FieldType, chain{
		regexGroupStrategy(sizeType, headerText, 1),
		regexStrategy(typeWord, headerBody),
		e.fuzzyKeyword(candidates...),
	}, "humanoid")
	r.Type = strings.ToLower(m.value)

	if groups := submatch(subtypeParen, e.doc.header); groups != nil {
		r.Subtype = strings.ToLower(strings.TrimSpace(groups[0]))
	}
}

func alignmentKeyword(d *document) (match, bool) {
	for _, line := range window(d.lines, 5) {
		lower := strings.ToLower(line)
		for _, a := range alignments {
			if strings.Contains(lower, a) {
				return exact(a), true
			}
		}
	}
	return match{}, false
}

func (e *extraction) alignment(r *ParseResult) {
	m, _ := e.resolve(FieldAlignment, chain{
		regexStrategy(alignAfter, headerText),
		regexStrategy(alignLabel, headerText),
		alignmentKeyword,
	}, "unaligned")
	r.Alignment = strings.ToLower(strings.TrimRight(strings.TrimSpace(m.value), "."))
}

func (e *extraction) armorClass(r *ParseResult) {
	m, ok := e.resolve(FieldArmorClass, chain{
		regexStrategy(armorClass, headerText),
		e.fuzzyNumber("ac", "armor", "armour"),
	}, "10")
	r.ArmorClass = atoi(m.value)
	r.ArmorSource = strings.TrimSpace(m.group(1))
	if ok {
		e.checkRange(FieldArmorClass, r.ArmorClass, 5, 30)
	}
}

func (e *extraction) hitPoints(r *ParseResult) {
	m, ok := e.resolve(FieldHitPoints, chain{
		regexStrategy(hitPoints, headerText),
		e.fuzzyNumber("hp", "hit", "points", "health"),
	}, "5")
	r.HitPoints = atoi(m.value)
	r.HitFormula = strings.TrimSpace(m.group(1))
	if f, err := ParseDiceFormula(r.HitFormula); err == nil {
		r.HitFormula = f.String()
	}
	if ok {
		e.checkRange(FieldHitPoints, r.HitPoints, 1, 1000)
		e.checkAverage(FieldHitPoints, "hit points", r.HitFormula, r.HitPoints)
	}
}

func (e *extraction) speed(r *ParseResult) {
	m, _ := e.resolve(FieldSpeed, chain{
		regexStrategy(speedLine, headerText),
		e.fuzzyNumber("speed", "spd", "walk", "movement"),
	}, "30")

	r.Speed = Speed{Walk: atoi(m.value)}
	if walk := m.group(1); walk != "" {
		r.Speed.Walk = atoi(walk)
	}
	for _, mode := range speedMode.FindAllStringSubmatch(m.value, -1) {
		feet := atoi(mode[2])
		switch strings.ToLower(mode[1]) {
		case "fly":
			r.Speed.Fly = feet
		case "climb":
			r.Speed.Climb = feet
		case "swim":
			r.Speed.Swim = feet
		case "burrow":
			r.Speed.Burrow = feet
		}
	}
	r.Speed.Hover = speedHover.MatchString(m.value)
}

func (e *extraction) abilities(r *ParseResult) {
	m, _ := e.resolve(FieldAbilities, abilityChain, "STR 10 DEX 10 CON 10 INT 10 WIS 10 CHA 10")
	r.Abilities = scoresFromMatch(m)
}

func crLineScan(d *document) (match, bool) {
	for _, line := range d.lines {
		if !crLineHint.MatchString(line) || crLineArmor.MatchString(line) {
			continue
		}
		if groups := submatch(crLineValue, line); groups != nil {
			return exact(groups[0]), true
		}
	}
	return match{}, false
}

func (e *extraction) challengeRating(r *ParseResult) {
	m, _ := e.resolve(FieldChallengeRating, chain{
		regexStrategy(crParen, headerText),
		regexStrategy(crChallenge, headerText),
		regexStrategy(crLabel, headerText),
		crLineScan,
		e.fuzzyNumber("challenge", "cr", "rating"),
	}, "1")

	cr, err := ParseChallengeRating(m.value)
	if err != nil {
		e.warn(WarningOutOfRange, FieldChallengeRating, "%v, using 1", err)
		m.value, cr = "1", 1
	}
	if cr > 30 {
		e.warn(WarningOutOfRange, FieldChallengeRating, "challenge rating %s is above 30", m.value)
	}
	r.ChallengeRating = m.value
	r.ChallengeValue = cr
	r.ProficiencyBonus = ProficiencyBonus(cr)
}

// sectionStrategy takes the text after label up to the next label
func sectionStrategy(label *regexp.Regexp) strategy {
	return func(d *document) (match, bool) {
		text, ok := labelledSection(d.header, label)
		if !ok || text == "" {
			return match{}, false
		}
		return exact(text), true
	}
}

// savesFromTable reads "Str 16 +3 +5" rows and keeps those whose save differs
// from the modifier
func savesFromTable(d *document) (match, bool) {
	var entries []string
	for _, row := range saveTableRow.FindAllStringSubmatch(d.header, -1) {
		mod, save := atoi(row[3]), atoi(row[4])
		if save != mod {
			entries = append(entries, fmt.Sprintf("%s %s", capitalize(row[1]), FormatModifier(save)))
		}
	}
	if len(entries) == 0 {
		return match{}, false
	}
	return exact(strings.Join(entries, ", ")), true
}

func (e *extraction) saves(r *ParseResult) {
	m, ok := e.resolve(FieldSaves, chain{sectionStrategy(savesLabel), savesFromTable}, "none")
	text := ""
	if ok {
		text = m.value
	}

	saves, unknown := DeriveSaves(text, r.Abilities)
	r.Saves = saves
	for _, entry := range unknown {
		e.warn(WarningUnknownEntry, FieldSaves, "unrecognized save: %q", entry)
	}
}

func (e *extraction) skills(r *ParseResult) {
	m, ok := e.resolve(FieldSkills, chain{sectionStrategy(skillsLabel)}, "none")
	text := ""
	if ok {
		text = m.value
	}

	skills, unknown := DeriveSkills(text, r.Abilities, r.ProficiencyBonus)
	r.Skills = skills
	for _, entry := range unknown {
		e.warn(WarningUnknownEntry, FieldSkills, "unrecognized skill: %q", entry)
	}
}

// ParseSenses splits a senses text into ranged senses, passive perception and
// whatever else it mentions
func ParseSenses(text string) Senses {
	var senses Senses
	var special []string
	for _, part := range splitEntries(text) {
		if m := senseRange.FindStringSubmatch(part); m != nil {
			feet := atoi(m[2])
			switch strings.ToLower(m[1]) {
			case "darkvision":
				senses.Darkvision = feet
			case "blindsight":
				senses.Blindsight = feet
			case "tremorsense":
				senses.Tremorsense = feet
			case "truesight":
				senses.Truesight = feet
			}
			if rest := strings.TrimSpace(part[len(m[0]):]); rest != "" && rest != "." {
				special = append(special, rest)
			}
			continue
		}
		if m := passive.FindStringSubmatch(part); m != nil {
			senses.PassivePerception = atoi(m[1])
			continue
		}
		special = append(special, part)
	}
	senses.Special = strings.Join(special, ", ")
	return senses
}

func (e *extraction) senses(r *ParseResult) {
	m, ok := e.resolve(FieldSenses, chain{sectionStrategy(sensesLabel)}, "none")
	if ok {
		r.SensesText = m.value
		r.Senses = ParseSenses(m.value)
	}
	if r.Senses.PassivePerception == 0 {
		r.Senses.PassivePerception = 10 + r.Skills["prc"].Bonus
	}
}

// ParseLanguages returns the language names of a languages text. A dash or
// "none" means no languages.
func ParseLanguages(text string) []string {
	languages := []string{}
	for _, part := range splitEntries(parenthetical.ReplaceAllString(text, "")) {
		part = strings.TrimRight(part, ".")
		switch strings.ToLower(part) {
		case "", "-", "—", "none":
			continue
		}
		languages = append(languages, part)
	}
	return languages
}

func (e *extraction) languages(r *ParseResult) {
	m, ok := e.resolve(FieldLanguages, chain{sectionStrategy(languageLabel)}, "none")
	r.Languages = []string{}
	if ok {
		r.LanguagesText = m.value
		r.Languages = ParseLanguages(m.value)
	}
}

func (e *extraction) initiative(r *ParseResult) {
	dex := r.Abilities.Modifier(Dexterity)
	m, _ := e.resolve(FieldInitiative, chain{regexStrategy(initiative, headerText)}, FormatModifier(dex))
	r.Initiative = atoi(strings.TrimPrefix(m.value, "+"))
}

func (e *extraction) defenses(r *ParseResult) {
	list := func(key string) []string {
		text, ok := labelledSection(e.doc.header, defenseLabels[key])
		if !ok {
			return nil
		}
		var out []string
		for _, entry := range splitEntries(text) {
			out = append(out, strings.ToLower(strings.TrimRight(entry, ".")))
		}
		return out
	}

	r.Defenses = Defenses{
		DamageImmunities:      list("damage immunities"),
		DamageResistances:     list("damage resistances"),
		DamageVulnerabilities: list("damage vulnerabilities"),
		ConditionImmunities:   list("condition immunities"),
	}
}

func (e *extraction) actions(r *ParseResult) {
	blocks := sectionBlocks(e.doc)

	actions := ParseActions(blocks[SectionActions])
	counted := func(*document) (match, bool) {
		if len(actions) == 0 {
			return match{}, false
		}
		return exact(strconv.Itoa(len(actions))), true
	}
	e.resolve(FieldActions, chain{counted}, "0")

	r.Actions = actions
	if r.Actions == nil {
		r.Actions = []Action{}
	}
	r.Traits = ParseActions(blocks[SectionTraits])
	r.BonusActions = ParseActions(blocks[SectionBonusActions])
	r.Reactions = ParseActions(blocks[SectionReactions])
	r.LegendaryActions = ParseActions(blocks[SectionLegendaryActions])

	for _, group := range [][]Action{r.Actions, r.BonusActions, r.Reactions, r.LegendaryActions} {
		for _, action := range group {
			if action.Damage == nil {
				continue
			}
			e.checkAverage(FieldActions, action.Name, action.Damage.Formula, action.Damage.Average)
			if extra := action.Damage.Additional; extra != nil {
				e.checkAverage(FieldActions, action.Name, extra.Formula, extra.Average)
			}
		}
	}
}

func (e *extraction) checkRange(field Field, value, lo, hi int) {
	if value < lo || value > hi {
		e.warn(WarningOutOfRange, field, "%s %d is outside %d..%d", field, value, lo, hi)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
