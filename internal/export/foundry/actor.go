// Package foundry serializes parse results into Foundry VTT dnd5e NPC actor
// documents. The statblock core knows nothing about this schema.
package foundry

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Version selects the dnd5e system schema to write
type Version string

// Supported schema versions
const (
	V10 Version = "v10"
	V12 Version = "v12"
)

// DefaultVersion is used when no version is requested
const DefaultVersion = V12

// Versions lists the supported schema versions
var Versions = []Version{V10, V12}

type versionInfo struct {
	coreVersion   string
	systemVersion string
}

var versionInfos = map[Version]versionInfo{
	V10: {coreVersion: "10.291", systemVersion: "2.4.1"},
	V12: {coreVersion: "12.331", systemVersion: "3.3.1"},
}

// ParseVersion accepts "v12", "12" or "" (default)
func ParseVersion(s string) (Version, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultVersion, nil
	}
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	v := Version(s)
	if _, ok := versionInfos[v]; !ok {
		return "", errors.InvalidArgumentf("unsupported foundry version: %q", s).
			WithMeta("supported", "v10,v12")
	}
	return v, nil
}

var sizeCodes = map[string]string{
	"tiny":       "tiny",
	"small":      "sm",
	"medium":     "med",
	"large":      "lg",
	"huge":       "huge",
	"gargantuan": "grg",
}

// Actor is an NPC actor document
type Actor struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Img     string         `json:"img"`
	System  System         `json:"system"`
	Items   []Item         `json:"items"`
	Effects []any          `json:"effects"`
	Flags   map[string]any `json:"flags"`
	Stats   DocumentStats  `json:"_stats"`
}

// DocumentStats records the schema the document was written for
type DocumentStats struct {
	CoreVersion   string `json:"coreVersion"`
	SystemID      string `json:"systemId"`
	SystemVersion string `json:"systemVersion"`
}

// System is the dnd5e system data of an NPC
type System struct {
	Abilities  map[string]AbilityData `json:"abilities"`
	Skills     map[string]SkillData   `json:"skills"`
	Attributes Attributes             `json:"attributes"`
	Details    Details                `json:"details"`
	Traits     Traits                 `json:"traits"`
}

// AbilityData is one ability score and its save proficiency
type AbilityData struct {
	Value      int `json:"value"`
	Proficient int `json:"proficient"`
}

// SkillData is one skill's proficiency tier
type SkillData struct {
	Value   int    `json:"value"`
	Ability string `json:"ability"`
}

// Attributes holds the combat attributes of an actor
type Attributes struct {
	AC       ArmorClass `json:"ac"`
	HP       HitPoints  `json:"hp"`
	Init     Initiative `json:"init"`
	Movement Movement   `json:"movement"`
	Senses   Senses     `json:"senses"`
}

// ArmorClass is a flat armor class
type ArmorClass struct {
	Flat int    `json:"flat"`
	Calc string `json:"calc"`
}

// HitPoints holds current and max hit points and the hit dice formula
type HitPoints struct {
	Value   int    `json:"value"`
	Max     int    `json:"max"`
	Temp    int    `json:"temp"`
	Formula string `json:"formula"`
}

// Initiative holds the bonus on top of the dexterity modifier
type Initiative struct {
	Ability string `json:"ability"`
	Bonus   string `json:"bonus"`
}

// Movement holds speeds in feet
type Movement struct {
	Walk   int    `json:"walk"`
	Fly    int    `json:"fly"`
	Climb  int    `json:"climb"`
	Swim   int    `json:"swim"`
	Burrow int    `json:"burrow"`
	Units  string `json:"units"`
	Hover  bool   `json:"hover"`
}

// Senses holds sense ranges in feet
type Senses struct {
	Darkvision  int    `json:"darkvision"`
	Blindsight  int    `json:"blindsight"`
	Tremorsense int    `json:"tremorsense"`
	Truesight   int    `json:"truesight"`
	Units       string `json:"units"`
	Special     string `json:"special"`
}

// Details holds descriptive data
type Details struct {
	Alignment string       `json:"alignment"`
	Type      CreatureType `json:"type"`
	CR        float64      `json:"cr"`
	XP        *XP          `json:"xp,omitempty"`
	Biography Biography    `json:"biography"`
}

// CreatureType is the creature type block
type CreatureType struct {
	Value   string `json:"value"`
	Subtype string `json:"subtype"`
	Swarm   string `json:"swarm"`
	Custom  string `json:"custom"`
}

// XP is stored on v10 actors; later versions derive it from cr
type XP struct {
	Value int `json:"value"`
}

// Biography is the actor's description
type Biography struct {
	Value string `json:"value"`
}

// Traits holds size, languages and defenses
type Traits struct {
	Size      string   `json:"size"`
	DI        TraitSet `json:"di"`
	DR        TraitSet `json:"dr"`
	DV        TraitSet `json:"dv"`
	CI        TraitSet `json:"ci"`
	Languages TraitSet `json:"languages"`
}

// TraitSet is a list of known keys plus free text
type TraitSet struct {
	Value  []string `json:"value"`
	Custom string   `json:"custom"`
}

// Serialize converts a parse result into an actor for the given version
func Serialize(r *statblock.ParseResult, version Version) (*Actor, error) {
	if r == nil {
		return nil, errors.InvalidArgument("parse result is required")
	}
	info, ok := versionInfos[version]
	if !ok {
		return nil, errors.InvalidArgumentf("unsupported foundry version: %q", version)
	}

	actor := &Actor{
		Name:    r.Name,
		Type:    "npc",
		Img:     "icons/svg/mystery-man.svg",
		System:  convertSystem(r, version),
		Items:   convertItems(r, version),
		Effects: []any{},
		Flags:   map[string]any{},
		Stats: DocumentStats{
			CoreVersion:   info.coreVersion,
			SystemID:      "dnd5e",
			SystemVersion: info.systemVersion,
		},
	}
	return actor, nil
}

// Marshal serializes a parse result to indented actor JSON
func Marshal(r *statblock.ParseResult, version Version) ([]byte, error) {
	actor, err := Serialize(r, version)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(actor, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}
	return data, nil
}

func convertSystem(r *statblock.ParseResult, version Version) System {
	sys := System{
		Abilities: make(map[string]AbilityData, len(statblock.Abilities)),
		Skills:    make(map[string]SkillData, len(r.Skills)),
		Attributes: Attributes{
			AC: ArmorClass{Flat: r.ArmorClass, Calc: "natural"},
			HP: HitPoints{
				Value:   r.HitPoints,
				Max:     r.HitPoints,
				Formula: r.HitFormula,
			},
			Init: Initiative{Bonus: initiativeBonus(r)},
			Movement: Movement{
				Walk:   r.Speed.Walk,
				Fly:    r.Speed.Fly,
				Climb:  r.Speed.Climb,
				Swim:   r.Speed.Swim,
				Burrow: r.Speed.Burrow,
				Units:  "ft",
				Hover:  r.Speed.Hover,
			},
			Senses: Senses{
				Darkvision:  r.Senses.Darkvision,
				Blindsight:  r.Senses.Blindsight,
				Tremorsense: r.Senses.Tremorsense,
				Truesight:   r.Senses.Truesight,
				Units:       "ft",
				Special:     r.Senses.Special,
			},
		},
		Details: Details{
			Alignment: r.Alignment,
			Type: CreatureType{
				Value:   r.Type,
				Subtype: r.Subtype,
			},
			CR: r.ChallengeValue,
		},
		Traits: Traits{
			Size:      sizeCode(r.Size),
			DI:        traitSet(r.Defenses.DamageImmunities),
			DR:        traitSet(r.Defenses.DamageResistances),
			DV:        traitSet(r.Defenses.DamageVulnerabilities),
			CI:        traitSet(r.Defenses.ConditionImmunities),
			Languages: languages(r.Languages),
		},
	}
	if r.ArmorSource != "" && !strings.Contains(strings.ToLower(r.ArmorSource), "natural") {
		sys.Attributes.AC.Calc = "flat"
	}
	if version == V10 {
		sys.Details.XP = &XP{Value: statblock.ExperienceForCR(r.ChallengeValue)}
	}

	for _, ab := range statblock.Abilities {
		data := AbilityData{Value: r.Abilities.Score(ab)}
		if r.Saves[ab].Proficient {
			data.Proficient = 1
		}
		sys.Abilities[string(ab)] = data
	}
	for code, skill := range r.Skills {
		sys.Skills[code] = SkillData{Value: int(skill.Tier), Ability: string(skill.Ability)}
	}
	return sys
}

// initiativeBonus is the stated initiative above the dexterity modifier
func initiativeBonus(r *statblock.ParseResult) string {
	extra := r.Initiative - r.Abilities.Modifier(statblock.Dexterity)
	if extra == 0 {
		return ""
	}
	return statblock.FormatModifier(extra)
}

func sizeCode(size string) string {
	if code, ok := sizeCodes[size]; ok {
		return code
	}
	return "med"
}

func traitSet(values []string) TraitSet {
	set := TraitSet{Value: []string{}}
	var custom []string
	for _, v := range values {
		if strings.ContainsAny(v, " ") {
			custom = append(custom, v)
			continue
		}
		set.Value = append(set.Value, v)
	}
	set.Custom = strings.Join(custom, "; ")
	return set
}

// languages keeps single-word languages as keys and moves the rest to custom
func languages(values []string) TraitSet {
	lower := make([]string, 0, len(values))
	for _, v := range values {
		lower = append(lower, strings.ToLower(v))
	}
	return traitSet(lower)
}
