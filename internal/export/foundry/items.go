package foundry

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Item is an embedded feature or weapon on the actor
type Item struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Img    string `json:"img"`
	System any    `json:"system"`
}

// ItemSystemV10 is the item data layout of dnd5e 2.x
type ItemSystemV10 struct {
	Description Description `json:"description"`
	Activation  Activation  `json:"activation"`
	ActionType  string      `json:"actionType"`
	AttackBonus string      `json:"attackBonus"`
	Damage      DamageV10   `json:"damage"`
	Range       ItemRange   `json:"range"`
	Recharge    Recharge    `json:"recharge"`
	Uses        Uses        `json:"uses"`
}

// DamageV10 lists [formula, type] pairs
type DamageV10 struct {
	Parts [][2]string `json:"parts"`
}

// ItemSystemV12 is the item data layout of dnd5e 3.x
type ItemSystemV12 struct {
	Description Description `json:"description"`
	Activation  Activation  `json:"activation"`
	ActionType  string      `json:"actionType"`
	Attack      AttackV12   `json:"attack"`
	Damage      DamageV12   `json:"damage"`
	Range       ItemRange   `json:"range"`
	Recharge    Recharge    `json:"recharge"`
	Uses        Uses        `json:"uses"`
}

// AttackV12 holds a flat attack bonus
type AttackV12 struct {
	Bonus string `json:"bonus"`
	Flat  bool   `json:"flat"`
}

// DamageV12 holds the base damage and any riders
type DamageV12 struct {
	Base  *DamagePartV12  `json:"base,omitempty"`
	Parts []DamagePartV12 `json:"parts"`
}

// DamagePartV12 is a structured damage roll
type DamagePartV12 struct {
	Number       int      `json:"number"`
	Denomination int      `json:"denomination"`
	Bonus        string   `json:"bonus"`
	Types        []string `json:"types"`
	Custom       Custom   `json:"custom"`
}

// Custom carries a formula that does not fit the structured form
type Custom struct {
	Enabled bool   `json:"enabled"`
	Formula string `json:"formula"`
}

// Description is the item description
type Description struct {
	Value string `json:"value"`
}

// Activation is the action economy cost of an item
type Activation struct {
	Type string `json:"type"`
	Cost int    `json:"cost"`
}

// ItemRange is reach or range in feet
type ItemRange struct {
	Value *int   `json:"value"`
	Long  *int   `json:"long"`
	Units string `json:"units"`
}

// Recharge is the recharge threshold
type Recharge struct {
	Value   *int `json:"value"`
	Charged bool `json:"charged"`
}

// Uses holds limited uses per period
type Uses struct {
	Value *int   `json:"value"`
	Max   string `json:"max"`
	Per   string `json:"per"`
}

var sectionActivation = []struct {
	activation string
	actions    func(r *statblock.ParseResult) []statblock.Action
}{
	{"", func(r *statblock.ParseResult) []statblock.Action { return r.Traits }},
	{"action", func(r *statblock.ParseResult) []statblock.Action { return r.Actions }},
	{"bonus", func(r *statblock.ParseResult) []statblock.Action { return r.BonusActions }},
	{"reaction", func(r *statblock.ParseResult) []statblock.Action { return r.Reactions }},
	{"legendary", func(r *statblock.ParseResult) []statblock.Action { return r.LegendaryActions }},
}

func convertItems(r *statblock.ParseResult, version Version) []Item {
	items := []Item{}
	for _, section := range sectionActivation {
		for _, action := range section.actions(r) {
			items = append(items, convertItem(action, section.activation, version))
		}
	}
	return items
}

func convertItem(action statblock.Action, activation string, version Version) Item {
	item := Item{
		Name: action.Name,
		Type: "feat",
		Img:  "icons/svg/book.svg",
	}
	if action.Attack != nil {
		item.Type = "weapon"
		item.Img = "icons/svg/sword.svg"
	}

	base := itemBase{
		description: Description{Value: "<p>" + action.Description + "</p>"},
		activation:  Activation{Type: activation},
		actionType:  actionType(action),
		rng:         itemRange(action.Attack),
		recharge:    recharge(action.Recharge),
		uses:        uses(action.Uses),
	}
	if restUses, ok := restRecharge(action.Recharge); ok {
		base.uses = restUses
	}
	if activation != "" {
		base.activation.Cost = 1
	}

	switch version {
	case V10:
		item.System = itemSystemV10(base, action)
	default:
		item.System = itemSystemV12(base, action)
	}
	return item
}

type itemBase struct {
	description Description
	activation  Activation
	actionType  string
	rng         ItemRange
	recharge    Recharge
	uses        Uses
}

func itemSystemV10(base itemBase, action statblock.Action) ItemSystemV10 {
	sys := ItemSystemV10{
		Description: base.description,
		Activation:  base.activation,
		ActionType:  base.actionType,
		Damage:      DamageV10{Parts: [][2]string{}},
		Range:       base.rng,
		Recharge:    base.recharge,
		Uses:        base.uses,
	}
	if action.Attack != nil {
		sys.AttackBonus = strconv.Itoa(action.Attack.Bonus)
	}
	if action.Damage != nil {
		sys.Damage.Parts = append(sys.Damage.Parts, [2]string{action.Damage.Formula, action.Damage.Type})
		if extra := action.Damage.Additional; extra != nil {
			sys.Damage.Parts = append(sys.Damage.Parts, [2]string{extra.Formula, extra.Type})
		}
	}
	return sys
}

func itemSystemV12(base itemBase, action statblock.Action) ItemSystemV12 {
	sys := ItemSystemV12{
		Description: base.description,
		Activation:  base.activation,
		ActionType:  base.actionType,
		Damage:      DamageV12{Parts: []DamagePartV12{}},
		Range:       base.rng,
		Recharge:    base.recharge,
		Uses:        base.uses,
	}
	if action.Attack != nil {
		sys.Attack = AttackV12{Bonus: strconv.Itoa(action.Attack.Bonus), Flat: true}
	}
	if action.Damage != nil {
		main := damagePartV12(action.Damage.DamagePart)
		sys.Damage.Base = &main
		if extra := action.Damage.Additional; extra != nil {
			sys.Damage.Parts = append(sys.Damage.Parts, damagePartV12(*extra))
		}
	}
	return sys
}

func damagePartV12(part statblock.DamagePart) DamagePartV12 {
	out := DamagePartV12{Types: []string{part.Type}}
	f, err := statblock.ParseDiceFormula(part.Formula)
	if err != nil {
		out.Custom = Custom{Enabled: true, Formula: part.Formula}
		return out
	}
	out.Number = f.Count
	out.Denomination = f.Size
	if f.Modifier != 0 {
		out.Bonus = strconv.Itoa(f.Modifier)
	}
	return out
}

func actionType(action statblock.Action) string {
	if action.Attack == nil {
		if action.Damage != nil {
			return "save"
		}
		return "other"
	}
	spell := strings.Contains(strings.ToLower(action.Description), "spell attack")
	ranged := action.Attack.Reach == nil && action.Attack.Range != nil
	switch {
	case spell && ranged:
		return "rsak"
	case spell:
		return "msak"
	case ranged:
		return "rwak"
	default:
		return "mwak"
	}
}

func itemRange(attack *statblock.Attack) ItemRange {
	rng := ItemRange{Units: "ft"}
	if attack == nil {
		rng.Units = ""
		return rng
	}
	if attack.Reach != nil {
		reach := *attack.Reach
		rng.Value = &reach
	}
	if attack.Range != nil && attack.Reach == nil {
		normal := attack.Range.Normal
		rng.Value = &normal
		rng.Long = attack.Range.Long
	}
	return rng
}

// recharge reads the low end of "5-6" or a bare "6"
func recharge(value string) Recharge {
	if value == "" {
		return Recharge{}
	}
	low, _, _ := strings.Cut(value, "-")
	n, err := strconv.Atoi(low)
	if err != nil {
		return Recharge{}
	}
	return Recharge{Value: &n, Charged: true}
}

// restRecharge turns "Recharges after a Short or Long Rest" into one use
// per rest
func restRecharge(value string) (Uses, bool) {
	lower := strings.ToLower(value)
	if !strings.Contains(lower, "rest") {
		return Uses{}, false
	}
	one := 1
	per := "lr"
	if strings.Contains(lower, "short") {
		per = "sr"
	}
	return Uses{Value: &one, Max: "1", Per: per}, true
}

// uses reads "3/Day" and "3/Day each"
func uses(value string) Uses {
	count, per, ok := strings.Cut(value, "/")
	if !ok {
		return Uses{}
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return Uses{}
	}
	period := strings.ToLower(strings.Fields(per + " day")[0])
	return Uses{Value: &n, Max: strconv.Itoa(n), Per: period}
}
