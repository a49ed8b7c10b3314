package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseActions_Bite(t *testing.T) {
	actions := ParseActions("Bite. Melee Weapon Attack: +4 to hit, reach 5 ft. Hit: 5 (1d6+2) piercing damage.")

	require.Len(t, actions, 1)
	bite := actions[0]
	assert.Equal(t, "Bite", bite.Name)
	assert.Equal(t, &Attack{Bonus: 4, Reach: intPtr(5)}, bite.Attack)
	require.NotNil(t, bite.Damage)
	assert.Equal(t, "1d6+2", bite.Damage.Formula)
	assert.Equal(t, "piercing", bite.Damage.Type)
	assert.Equal(t, 5, bite.Damage.Average)
	assert.Nil(t, bite.Damage.Additional)
}

func TestParseActions_Block(t *testing.T) {
	block := `
Multiattack. The dragon makes three attacks.
Bite. Melee Weapon Attack: +11 to hit, reach 10 ft., one target. Hit: 17 (2d10 + 6) piercing damage plus 4 (1d8) fire damage.
Fire Breath (Recharge 5-6). The dragon exhales fire in a 60-foot cone.
Each creature in that area must make a DC 18 Dexterity saving throw.
Longbow. Ranged Weapon Attack: +4 to hit, range 150/600 ft., one target. Hit: 6 (1d8 + 2) piercing damage.
Spellcasting (3/Day). The dragon casts fireball.
Change Shape (Dragon Form Only). The dragon polymorphs.
`
	actions := ParseActions(block)
	require.Len(t, actions, 6)

	multiattack := actions[0]
	assert.Equal(t, "Multiattack", multiattack.Name)
	assert.Equal(t, "The dragon makes three attacks.", multiattack.Description)
	assert.Nil(t, multiattack.Attack)
	assert.Nil(t, multiattack.Damage)

	bite := actions[1]
	assert.Equal(t, &Attack{Bonus: 11, Reach: intPtr(10)}, bite.Attack)
	require.NotNil(t, bite.Damage)
	assert.Equal(t, DamagePart{Average: 17, Formula: "2d10+6", Type: "piercing"}, bite.Damage.DamagePart)
	assert.Equal(t, &DamagePart{Average: 4, Formula: "1d8", Type: "fire"}, bite.Damage.Additional)

	breath := actions[2]
	assert.Equal(t, "Fire Breath", breath.Name)
	assert.Equal(t, "5-6", breath.Recharge)
	assert.Equal(t,
		"The dragon exhales fire in a 60-foot cone. Each creature in that area must make a DC 18 Dexterity saving throw.",
		breath.Description)
	assert.Nil(t, breath.Attack)

	longbow := actions[3]
	require.NotNil(t, longbow.Attack)
	assert.Equal(t, 4, longbow.Attack.Bonus)
	assert.Nil(t, longbow.Attack.Reach)
	assert.Equal(t, &Range{Normal: 150, Long: intPtr(600)}, longbow.Attack.Range)

	spellcasting := actions[4]
	assert.Equal(t, "Spellcasting", spellcasting.Name)
	assert.Equal(t, "3/Day", spellcasting.Uses)

	assert.Equal(t, "Change Shape (Dragon Form Only)", actions[5].Name)
}

func TestParseActions_RechargeAfterRest(t *testing.T) {
	actions := ParseActions("Leadership (Recharges after a Short or Long Rest). For 1 minute, the knight can utter a special command.")
	require.Len(t, actions, 1)
	assert.Equal(t, "Leadership", actions[0].Name)
	assert.Equal(t, "Recharges after a Short or Long Rest", actions[0].Recharge)
}

func TestParseActions_WrappedContinuation(t *testing.T) {
	block := "Bite. Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 6 (1d8 + 2) piercing damage, and the target is\nGrappled.\nClaw. Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 4 (1d4 + 2) slashing damage."

	actions := ParseActions(block)
	require.Len(t, actions, 2)
	assert.Equal(t, "Bite", actions[0].Name)
	assert.Equal(t,
		"Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 6 (1d8 + 2) piercing damage, and the target is Grappled.",
		actions[0].Description)
	assert.Equal(t, "Claw", actions[1].Name)
}

func TestParseActions_Empty(t *testing.T) {
	assert.Empty(t, ParseActions(""))
	assert.Empty(t, ParseActions("the creature has no actions of note"))
}

func TestSectionBlocks(t *testing.T) {
	t.Run("heading lines", func(t *testing.T) {
		doc := newDocument("Knight\nChallenge 3 (700 XP)\nBrave. Trait text.\nActions\nSlam. Hit.\nReactions\nParry. Block.\nLegendary Actions\nMove. Go.")
		blocks := sectionBlocks(doc)

		assert.Equal(t, "Brave. Trait text.\n", blocks[SectionTraits])
		assert.Equal(t, "\nSlam. Hit.\n", blocks[SectionActions])
		assert.Equal(t, "\nParry. Block.\n", blocks[SectionReactions])
		assert.Equal(t, "\nMove. Go.", blocks[SectionLegendaryActions])
	})

	t.Run("inline actions on a single line", func(t *testing.T) {
		doc := newDocument("Rat Tiny beast, unaligned AC 10 HP 1 Actions Bite. Melee Weapon Attack: +0 to hit, reach 5 ft. Hit: 1 (1d1) piercing damage.")
		blocks := sectionBlocks(doc)

		actions := ParseActions(blocks[SectionActions])
		require.Len(t, actions, 1)
		assert.Equal(t, "Bite", actions[0].Name)
		assert.Equal(t, "Rat Tiny beast, unaligned AC 10 HP 1 ", doc.header)
	})

	t.Run("bonus actions are not the actions block", func(t *testing.T) {
		doc := newDocument("Imp\nBonus Actions Dash. Move.")
		blocks := sectionBlocks(doc)
		_, ok := blocks[SectionActions]
		assert.False(t, ok)
	})
}
