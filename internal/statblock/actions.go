package statblock

import (
	"regexp"
	"strconv"
	"strings"
)

// Section names an actions-style block of the stat block
type Section string

// Sections
const (
	SectionTraits           Section = "traits"
	SectionActions          Section = "actions"
	SectionBonusActions     Section = "bonus actions"
	SectionReactions        Section = "reactions"
	SectionLegendaryActions Section = "legendary actions"
)

var (
	actionHeading = regexp.MustCompile(`^([A-Z][A-Za-z' \-]*?)(?:\s*\(([^)]*)\))?\.\s+(.+)$`)

	attackBonus    = regexp.MustCompile(`(?i)(?:Melee|Ranged|Melee or Ranged)\s+(?:(?:Weapon|Spell)\s+)?Attack(?:\s+Roll)?:\s*([+-]\d+)`)
	attackReach    = regexp.MustCompile(`(?i)reach\s+(\d+)\s*ft`)
	attackRange    = regexp.MustCompile(`(?i)range\s+(\d+)(?:/(\d+))?\s*ft`)
	hitDamage      = regexp.MustCompile(`(?i)Hit:\s*(\d+)\s*\(([^)]+)\)\s+(\w+)\s+damage`)
	plusDamage     = regexp.MustCompile(`(?i)plus\s+(\d+)\s*\(([^)]+)\)\s+(\w+)\s+damage`)
	rechargeNote   = regexp.MustCompile(`(?i)^recharge(?:\s+(\d+(?:-\d+)?))?`)
	usesNote       = regexp.MustCompile(`(?i)^\d+/day`)
	sectionHeading = regexp.MustCompile(`(?im)^[ \t]*(bonus actions|legendary actions|reactions|actions|traits)[ \t]*:?[ \t]*$`)
	inlineActions  = regexp.MustCompile(`(?i)\bactions\s+`)
	inlineEnd      = regexp.MustCompile(`(?i)\b(?:reactions|legendary actions|bonus actions)\b`)
	traitsStart    = regexp.MustCompile(`(?i)^(?:challenge|cr\s|proficiency bonus|pb\s|languages)`)
)

// ParseActions segments an actions block into named actions and extracts
// attack and damage clauses from each
func ParseActions(block string) []Action {
	var actions []Action
	var current *Action

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := actionHeading.FindStringSubmatch(line); m != nil {
			if current != nil {
				actions = append(actions, *current)
			}
			current = newAction(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
			continue
		}

		if current != nil {
			current.Description = strings.TrimSpace(current.Description + " " + line)
		}
	}
	if current != nil {
		actions = append(actions, *current)
	}

	for i := range actions {
		actions[i].Attack = parseAttack(actions[i].Description)
		actions[i].Damage = parseDamage(actions[i].Description)
	}
	return actions
}

func newAction(name, note, rest string) *Action {
	action := &Action{Name: name, Description: rest}
	recharge := rechargeNote.FindStringSubmatch(note)
	switch {
	case note == "":
	case recharge != nil:
		action.Recharge = note
		if recharge[1] != "" {
			action.Recharge = recharge[1]
		}
	case usesNote.MatchString(note):
		action.Uses = note
	default:
		action.Name = name + " (" + note + ")"
	}
	return action
}

func parseAttack(desc string) *Attack {
	m := attackBonus.FindStringSubmatch(desc)
	if m == nil {
		return nil
	}

	attack := &Attack{Bonus: atoi(m[1])}
	if r := attackReach.FindStringSubmatch(desc); r != nil {
		reach := atoi(r[1])
		attack.Reach = &reach
	}
	if r := attackRange.FindStringSubmatch(desc); r != nil {
		rng := &Range{Normal: atoi(r[1])}
		if r[2] != "" {
			long := atoi(r[2])
			rng.Long = &long
		}
		attack.Range = rng
	}
	return attack
}

func parseDamage(desc string) *Damage {
	m := hitDamage.FindStringSubmatch(desc)
	if m == nil {
		return nil
	}

	damage := &Damage{DamagePart: damagePart(m)}
	if p := plusDamage.FindStringSubmatch(desc); p != nil {
		extra := damagePart(p)
		damage.Additional = &extra
	}
	return damage
}

func damagePart(m []string) DamagePart {
	return DamagePart{
		Average: atoi(m[1]),
		Formula: strings.ReplaceAll(m[2], " ", ""),
		Type:    strings.ToLower(m[3]),
	}
}

// sectionBlocks splits the text into named blocks by heading line. When no
// Actions heading stands on its own line the first inline "Actions" is used.
func sectionBlocks(d *document) map[Section]string {
	blocks := make(map[Section]string)

	locs := sectionHeading.FindAllStringSubmatchIndex(d.text, -1)
	for i, loc := range locs {
		name := Section(strings.ToLower(d.text[loc[2]:loc[3]]))
		end := len(d.text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if _, seen := blocks[name]; !seen {
			blocks[name] = d.text[loc[1]:end]
		}
	}

	if _, ok := blocks[SectionActions]; !ok {
		if loc := inlineActionsLoc(d.text); loc != nil {
			rest := d.text[loc[1]:]
			if end := inlineEnd.FindStringIndex(rest); end != nil {
				rest = rest[:end[0]]
			}
			blocks[SectionActions] = rest
		}
	}

	if _, ok := blocks[SectionTraits]; !ok {
		if block := traitsBlock(d); block != "" {
			blocks[SectionTraits] = block
		}
	}
	return blocks
}

// inlineActionsLoc locates the first "Actions " that is not part of
// "Bonus Actions" or "Legendary Actions"
func inlineActionsLoc(text string) []int {
	for _, loc := range inlineActions.FindAllStringIndex(text, -1) {
		prefix := strings.ToLower(text[:loc[0]])
		if strings.HasSuffix(prefix, "bonus ") || strings.HasSuffix(prefix, "legendary ") {
			continue
		}
		return loc
	}
	return nil
}

// headerEnd returns the offset of the first action-style heading, or the
// text length when there is none
func headerEnd(text string) int {
	for _, loc := range sectionHeading.FindAllStringSubmatchIndex(text, -1) {
		if !strings.EqualFold(text[loc[2]:loc[3]], string(SectionTraits)) {
			return loc[0]
		}
	}
	if loc := inlineActionsLoc(text); loc != nil {
		return loc[0]
	}
	return len(text)
}

// traitsBlock returns the header lines after the last stat line
func traitsBlock(d *document) string {
	lines := strings.Split(d.header, "\n")
	start := -1
	for i, line := range lines {
		if traitsStart.MatchString(strings.TrimSpace(line)) {
			start = i + 1
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}
	return strings.Join(lines[start:], "\n")
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}
