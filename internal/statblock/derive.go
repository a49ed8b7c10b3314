package statblock

import (
	"regexp"
	"strconv"
	"strings"
)

// Skill describes one of the fixed skills
type Skill struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Ability Ability `json:"ability"`
}

// Skills is the fixed skill table keyed by short code
var Skills = []Skill{
	{Code: "acr", Name: "acrobatics", Ability: Dexterity},
	{Code: "ani", Name: "animal handling", Ability: Wisdom},
	{Code: "arc", Name: "arcana", Ability: Intelligence},
	{Code: "ath", Name: "athletics", Ability: Strength},
	{Code: "dec", Name: "deception", Ability: Charisma},
	{Code: "his", Name: "history", Ability: Intelligence},
	{Code: "ins", Name: "insight", Ability: Wisdom},
	{Code: "itm", Name: "intimidation", Ability: Charisma},
	{Code: "inv", Name: "investigation", Ability: Intelligence},
	{Code: "med", Name: "medicine", Ability: Wisdom},
	{Code: "nat", Name: "nature", Ability: Intelligence},
	{Code: "prc", Name: "perception", Ability: Wisdom},
	{Code: "prf", Name: "performance", Ability: Charisma},
	{Code: "per", Name: "persuasion", Ability: Charisma},
	{Code: "rel", Name: "religion", Ability: Intelligence},
	{Code: "slt", Name: "sleight of hand", Ability: Dexterity},
	{Code: "ste", Name: "stealth", Ability: Dexterity},
	{Code: "sur", Name: "survival", Ability: Wisdom},
}

var (
	skillsByName = func() map[string]Skill {
		m := make(map[string]Skill, len(Skills))
		for _, s := range Skills {
			m[s.Name] = s
		}
		return m
	}()

	saveEntry  = regexp.MustCompile(`(?i)^(str|dex|con|int|wis|cha)[a-z]*\s*([+-]\d+)`)
	skillEntry = regexp.MustCompile(`^([a-zA-Z\s]+?)\s*([+-]\d+)`)
	entrySplit = regexp.MustCompile(`[,;]`)
)

// SaveProficient reports whether a stated save bonus implies proficiency.
// Ties with the base modifier are not proficient.
func SaveProficient(bonus, base int) bool {
	return bonus > base
}

// SkillTier infers the tier of a stated skill bonus
func SkillTier(bonus, base, profBonus int) Tier {
	switch {
	case bonus == base+2*profBonus:
		return TierExpertise
	case bonus == base+profBonus, bonus > base:
		return TierProficient
	default:
		return TierNone
	}
}

// DeriveSaves returns the save state for all six abilities from a saves
// text such as "Dex +5, Wis +3". Entries that do not parse are returned.
func DeriveSaves(text string, scores AbilityScores) (map[Ability]Save, []string) {
	saves := make(map[Ability]Save, len(Abilities))
	for _, ab := range Abilities {
		saves[ab] = Save{Bonus: scores.Modifier(ab)}
	}

	var unknown []string
	for _, entry := range splitEntries(text) {
		m := saveEntry.FindStringSubmatch(entry)
		if m == nil {
			unknown = append(unknown, entry)
			continue
		}
		ab := Ability(strings.ToLower(m[1]))
		bonus, _ := strconv.Atoi(m[2])
		saves[ab] = Save{
			Stated:     true,
			Bonus:      bonus,
			Proficient: SaveProficient(bonus, scores.Modifier(ab)),
		}
	}
	return saves, unknown
}

// DeriveSkills returns the complete skill map from a skills text such as
// "Perception +4, Stealth +6". Unrecognized entries are returned.
func DeriveSkills(text string, scores AbilityScores, profBonus int) (map[string]SkillEntry, []string) {
	skills := make(map[string]SkillEntry, len(Skills))
	for _, s := range Skills {
		skills[s.Code] = SkillEntry{Ability: s.Ability, Bonus: scores.Modifier(s.Ability)}
	}

	var unknown []string
	for _, entry := range splitEntries(text) {
		m := skillEntry.FindStringSubmatch(entry)
		if m == nil {
			unknown = append(unknown, entry)
			continue
		}
		name := strings.ToLower(strings.Join(strings.Fields(m[1]), " "))
		skill, ok := skillsByName[name]
		if !ok {
			unknown = append(unknown, entry)
			continue
		}
		bonus, _ := strconv.Atoi(m[2])
		skills[skill.Code] = SkillEntry{
			Ability: skill.Ability,
			Tier:    SkillTier(bonus, scores.Modifier(skill.Ability), profBonus),
			Stated:  true,
			Bonus:   bonus,
		}
	}
	return skills, unknown
}

func splitEntries(text string) []string {
	var out []string
	for _, entry := range entrySplit.Split(text, -1) {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}
