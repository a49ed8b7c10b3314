package statblock

// Ability is the short key of one of the six ability scores
type Ability string

// Ability keys
const (
	Strength     Ability = "str"
	Dexterity    Ability = "dex"
	Constitution Ability = "con"
	Intelligence Ability = "int"
	Wisdom       Ability = "wis"
	Charisma     Ability = "cha"
)

// Abilities lists the ability keys in stat block order
var Abilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// AbilityScores holds the six raw scores. The zero value is not valid;
// use DefaultAbilityScores.
type AbilityScores struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// DefaultAbilityScores returns a set with every score at 10
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{Str: 10, Dex: 10, Con: 10, Int: 10, Wis: 10, Cha: 10}
}

// Score returns the score for an ability
func (a AbilityScores) Score(ab Ability) int {
	switch ab {
	case Strength:
		return a.Str
	case Dexterity:
		return a.Dex
	case Constitution:
		return a.Con
	case Intelligence:
		return a.Int
	case Wisdom:
		return a.Wis
	case Charisma:
		return a.Cha
	}
	return 10
}

// Set assigns the score for an ability
func (a *AbilityScores) Set(ab Ability, score int) {
	switch ab {
	case Strength:
		a.Str = score
	case Dexterity:
		a.Dex = score
	case Constitution:
		a.Con = score
	case Intelligence:
		a.Int = score
	case Wisdom:
		a.Wis = score
	case Charisma:
		a.Cha = score
	}
}

// Modifier returns the ability modifier for an ability
func (a AbilityScores) Modifier(ab Ability) int {
	return AbilityModifier(a.Score(ab))
}

// Method records how a field value was obtained
type Method string

// Resolution methods
const (
	MethodExact    Method = "exact"
	MethodFuzzy    Method = "fuzzy"
	MethodDefault  Method = "default"
	MethodOverride Method = "override"
)

// Field names a ledger entry
type Field string

// Ledger fields
const (
	FieldName            Field = "name"
	FieldSize            Field = "size"
	FieldType            Field = "type"
	FieldAlignment       Field = "alignment"
	FieldArmorClass      Field = "ac"
	FieldHitPoints       Field = "hp"
	FieldSpeed           Field = "speed"
	FieldAbilities       Field = "abilities"
	FieldChallengeRating Field = "cr"
	FieldSaves           Field = "saves"
	FieldSkills          Field = "skills"
	FieldSenses          Field = "senses"
	FieldLanguages       Field = "languages"
	FieldInitiative      Field = "initiative"
	FieldActions         Field = "actions"
)

// LedgerFields lists every field in the order the pipeline resolves them
var LedgerFields = []Field{
	FieldName, FieldSize, FieldType, FieldAlignment, FieldArmorClass, FieldHitPoints,
	FieldSpeed, FieldAbilities, FieldChallengeRating, FieldSaves, FieldSkills,
	FieldSenses, FieldLanguages, FieldInitiative, FieldActions,
}

// FieldRecord is one ledger entry
type FieldRecord struct {
	Name       Field   `json:"name"`
	RawValue   string  `json:"raw_value"`
	Method     Method  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// Stats accumulates resolution counts over one parse
type Stats struct {
	Total  int `json:"total"`
	Parsed int `json:"parsed"`
	Exact  int `json:"exact"`
	Fuzzy  int `json:"fuzzy"`
}

// Accuracy returns parsed/total as a rounded percentage
func (s Stats) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Parsed*200 + s.Total) / (s.Total * 2)
}

// WarningKind classifies a non-fatal parse condition
type WarningKind string

// Warning kinds
const (
	WarningFieldUnresolved    WarningKind = "field_unresolved"
	WarningLowConfidenceMatch WarningKind = "low_confidence_match"
	WarningOutOfRange         WarningKind = "out_of_range"
	WarningInconsistentValue  WarningKind = "inconsistent_value"
	WarningUnknownEntry       WarningKind = "unknown_entry"
	WarningInvalidDiceFormula WarningKind = "invalid_dice_formula"
)

// Warning is a non-fatal condition recorded during a parse
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   Field       `json:"field"`
	Message string      `json:"message"`
}

// Speed holds movement speeds in feet
type Speed struct {
	Walk   int  `json:"walk"`
	Fly    int  `json:"fly,omitempty"`
	Climb  int  `json:"climb,omitempty"`
	Swim   int  `json:"swim,omitempty"`
	Burrow int  `json:"burrow,omitempty"`
	Hover  bool `json:"hover,omitempty"`
}

// Senses holds the parsed senses line
type Senses struct {
	Darkvision        int    `json:"darkvision,omitempty"`
	Blindsight        int    `json:"blindsight,omitempty"`
	Tremorsense       int    `json:"tremorsense,omitempty"`
	Truesight         int    `json:"truesight,omitempty"`
	PassivePerception int    `json:"passive_perception,omitempty"`
	Special           string `json:"special,omitempty"`
}

// Defenses holds damage and condition lists
type Defenses struct {
	DamageImmunities      []string `json:"damage_immunities,omitempty"`
	DamageResistances     []string `json:"damage_resistances,omitempty"`
	DamageVulnerabilities []string `json:"damage_vulnerabilities,omitempty"`
	ConditionImmunities   []string `json:"condition_immunities,omitempty"`
}

// Save is the saving throw state for one ability
type Save struct {
	Stated     bool `json:"stated"`
	Bonus      int  `json:"bonus"`
	Proficient bool `json:"proficient"`
}

// Tier is a skill proficiency level
type Tier int

// Skill tiers
const (
	TierNone       Tier = 0
	TierProficient Tier = 1
	TierExpertise  Tier = 2
)

// SkillEntry is the derived state of one skill
type SkillEntry struct {
	Ability Ability `json:"ability"`
	Tier    Tier    `json:"tier"`
	Stated  bool    `json:"stated"`
	Bonus   int     `json:"bonus"`
}

// Range is a ranged attack's normal and long range in feet
type Range struct {
	Normal int  `json:"normal"`
	Long   *int `json:"long,omitempty"`
}

// Attack holds an action's attack roll details
type Attack struct {
	Bonus int    `json:"bonus"`
	Reach *int   `json:"reach,omitempty"`
	Range *Range `json:"range,omitempty"`
}

// DamagePart is one damage clause
type DamagePart struct {
	Average int    `json:"average"`
	Formula string `json:"formula"`
	Type    string `json:"type"`
}

// Damage is the primary damage clause plus an optional rider
type Damage struct {
	DamagePart
	Additional *DamagePart `json:"additional,omitempty"`
}

// Action is one named entry from an actions-style section
type Action struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Recharge    string  `json:"recharge,omitempty"`
	Uses        string  `json:"uses,omitempty"`
	Attack      *Attack `json:"attack"`
	Damage      *Damage `json:"damage"`
}

// ParseResult is the normalized creature record plus its ledger
type ParseResult struct {
	Name             string                `json:"name"`
	Size             string                `json:"size"`
	Type             string                `json:"type"`
	Subtype          string                `json:"subtype,omitempty"`
	Alignment        string                `json:"alignment"`
	ArmorClass       int                   `json:"armor_class"`
	ArmorSource      string                `json:"armor_source,omitempty"`
	HitPoints        int                   `json:"hit_points"`
	HitFormula       string                `json:"hit_formula,omitempty"`
	Speed            Speed                 `json:"speed"`
	Abilities        AbilityScores         `json:"abilities"`
	ChallengeRating  string                `json:"challenge_rating"`
	ChallengeValue   float64               `json:"challenge_value"`
	ProficiencyBonus int                   `json:"proficiency_bonus"`
	Saves            map[Ability]Save      `json:"saves"`
	Skills           map[string]SkillEntry `json:"skills"`
	SensesText       string                `json:"senses_text,omitempty"`
	Senses           Senses                `json:"senses"`
	LanguagesText    string                `json:"languages_text,omitempty"`
	Languages        []string              `json:"languages"`
	Initiative       int                   `json:"initiative"`
	Defenses         Defenses              `json:"defenses"`
	Traits           []Action              `json:"traits,omitempty"`
	Actions          []Action              `json:"actions"`
	BonusActions     []Action              `json:"bonus_actions,omitempty"`
	Reactions        []Action              `json:"reactions,omitempty"`
	LegendaryActions []Action              `json:"legendary_actions,omitempty"`
	Ledger           []FieldRecord         `json:"ledger"`
	Stats            Stats                 `json:"stats"`
	Accuracy         int                   `json:"accuracy"`
	Warnings         []Warning             `json:"warnings"`
}

// Field returns the ledger entry for a field
func (r *ParseResult) Field(name Field) (*FieldRecord, bool) {
	for i := range r.Ledger {
		if r.Ledger[i].Name == name {
			return &r.Ledger[i], true
		}
	}
	return nil, false
}
